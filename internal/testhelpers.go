package internal

import (
	"context"
	"sync"
	"time"
)

// CreateTestSession creates a test session with sample data
func CreateTestSession(id string) *Session {
	now := time.Now().UTC().Format(time.RFC3339)
	return &Session{
		ID:       id,
		Source:   "localStorage",
		Category: CategoryCoding,
		Messages: []Message{
			{
				Role:      RoleUser,
				Content:   "Buat part merah",
				Timestamp: now,
			},
			{
				Role:      RoleAssistant,
				Content:   "Berikut kodenya:\n```lua\nlocal part = Instance.new(\"Part\")\n```",
				Timestamp: now,
				Category:  CategoryCoding,
			},
		},
		Metadata: Metadata{
			Name:         AppName,
			MessageCount: 2,
			Stats:        MessageStats{User: 1, Assistant: 1, Total: 2},
			CodeBlocks:   1,
			CreatedAt:    now,
		},
	}
}

// CreateTestSessionWithMessages creates a test session with custom messages
func CreateTestSessionWithMessages(id string, messages []Message) *Session {
	return &Session{
		ID:       id,
		Source:   "localStorage",
		Category: CategoryGeneral,
		Messages: messages,
		Metadata: Metadata{
			MessageCount: len(messages),
			Stats:        CountMessages(messages),
		},
	}
}

// StubCall records one Complete invocation of a StubDispatcher
type StubCall struct {
	Text     string
	History  []Message
	Category string
}

// StubDispatcher returns a fixed reply or error and records its calls
type StubDispatcher struct {
	Reply string
	Err   error
	// Block, when set, is waited on before replying
	Block chan struct{}

	mu    sync.Mutex
	calls []StubCall
}

func (d *StubDispatcher) Complete(ctx context.Context, text string, history []Message, category string) (string, error) {
	d.mu.Lock()
	d.calls = append(d.calls, StubCall{Text: text, History: append([]Message(nil), history...), Category: category})
	d.mu.Unlock()

	if d.Block != nil {
		select {
		case <-d.Block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if d.Err != nil {
		return "", d.Err
	}
	return d.Reply, nil
}

// Calls returns the recorded invocations
func (d *StubDispatcher) Calls() []StubCall {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]StubCall(nil), d.calls...)
}
