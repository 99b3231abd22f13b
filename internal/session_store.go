package internal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// ErrorMessagePrefix starts the content of an assistant message recording a failed send
const ErrorMessagePrefix = "❌ Maaf, terjadi kesalahan saat memproses pesan Anda. Silakan coba lagi.\n\nError: "

// SessionStore holds the chat of one session: the ordered messages, the
// loading flag, the active category and the last dispatch error. Every
// change to the sequence is written back to the store under ChatHistoryKey.
type SessionStore struct {
	mu         sync.Mutex
	store      Store
	dispatcher Dispatcher
	tracker    *Tracker
	normalizer *Normalizer

	messages  []Message
	loading   bool
	category  string
	lastError error
}

// NewSessionStore creates a session over store. tracker may be nil.
func NewSessionStore(store Store, dispatcher Dispatcher, tracker *Tracker) *SessionStore {
	return &SessionStore{
		store:      store,
		dispatcher: dispatcher,
		tracker:    tracker,
		normalizer: NewNormalizer(),
		category:   CategoryGeneral,
	}
}

// Load restores the persisted category and history, or starts with the
// welcome message when no history is persisted. An unreadable history is
// logged and replaced by an empty sequence.
func (s *SessionStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category, found, err := s.store.Get(CategoryKey); err == nil && found {
		s.category = NormalizeCategory(category)
	}

	var saved []Message
	found, err := GetJSON(s.store, ChatHistoryKey, &saved)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			LogError("Error loading chat history: %v", err)
			s.messages = nil
			return nil
		}
		return err
	}

	if !found {
		s.messages = []Message{NewMessage(RoleAssistant, WelcomeMessage)}
		LogDebug("No chat history, starting with welcome message")
		return nil
	}

	s.messages = s.normalizer.NormalizeMessages(saved)
	LogDebug("Loaded %d messages from chat history", len(s.messages))
	return nil
}

// Send appends text as a user message, dispatches it with the prior history
// and appends the reply. A failed dispatch still resolves to exactly one
// assistant message: the fallback reply when the error carries one, an
// error message otherwise. The returned error is reserved for rejected
// input, ErrBusy and storage failures; dispatch failures are reported by
// LastError.
func (s *SessionStore) Send(ctx context.Context, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, NewValidationError(MsgEmptyMessage)
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return Message{}, ErrBusy
	}
	history, category := s.beginLocked(text)
	s.mu.Unlock()

	return s.complete(ctx, text, history, category)
}

// Retry resends the last user message. That message and everything after
// it are dropped first, along with every error message, so the resend
// lands where the original question stood. Without a user message it does
// nothing and reports false.
func (s *SessionStore) Retry(ctx context.Context) (Message, bool, error) {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return Message{}, false, ErrBusy
	}
	lastUser := -1
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Role == RoleUser {
			lastUser = i
			break
		}
	}
	if lastUser < 0 {
		s.mu.Unlock()
		return Message{}, false, nil
	}

	content := strings.TrimSpace(s.messages[lastUser].Content)
	if content == "" {
		s.mu.Unlock()
		return Message{}, true, NewValidationError(MsgEmptyMessage)
	}

	kept := make([]Message, 0, lastUser)
	for _, m := range s.messages[:lastUser] {
		if !m.IsError {
			kept = append(kept, m)
		}
	}
	s.messages = kept
	history, category := s.beginLocked(content)
	s.mu.Unlock()

	LogDebug("Retrying last user message")
	msg, err := s.complete(ctx, content, history, category)
	return msg, true, err
}

// beginLocked appends the user message, marks the session loading and
// persists. It returns the history and category to dispatch with. Caller
// holds mu.
func (s *SessionStore) beginLocked(text string) ([]Message, string) {
	history := append([]Message(nil), s.messages...)
	s.messages = append(s.messages, NewMessage(RoleUser, text))
	s.loading = true
	s.lastError = nil
	if err := s.persistLocked(); err != nil {
		LogError("Error saving chat history: %v", err)
	}
	return history, s.category
}

// complete dispatches text and appends the resulting assistant message
func (s *SessionStore) complete(ctx context.Context, text string, history []Message, category string) (Message, error) {
	reply, dispatchErr := s.dispatcher.Complete(ctx, text, history, category)

	var assistant Message
	switch {
	case dispatchErr == nil:
		assistant = NewMessage(RoleAssistant, reply)
		assistant.Category = category
	default:
		LogError("Chat error: %v", dispatchErr)
		var de *DispatchError
		if errors.As(dispatchErr, &de) && de.Fallback != "" {
			assistant = NewMessage(RoleAssistant, de.Fallback)
			assistant.Category = category
		} else {
			assistant = NewMessage(RoleAssistant, ErrorMessagePrefix+dispatchErr.Error())
			assistant.IsError = true
		}
	}

	s.mu.Lock()
	s.messages = append(s.messages, assistant)
	s.loading = false
	s.lastError = dispatchErr
	err := s.persistLocked()
	s.mu.Unlock()

	s.track(ActivityChat)
	if !assistant.IsError && HasCode(assistant.Content) {
		s.track(ActivityCode)
	}

	return assistant, err
}

// Edit replaces the content of the user message at index and marks it
// edited. Blank text is rejected. Assistant entries and out-of-range
// indexes are left alone and reported as false.
func (s *SessionStore) Edit(index int, text string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, NewValidationError(MsgEmptyMessage)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.messages) || s.messages[index].Role != RoleUser {
		return false, nil
	}
	s.messages[index].Content = text
	s.messages[index].Edited = true
	return true, s.persistLocked()
}

// Delete removes the message at index. Out-of-range indexes are ignored.
func (s *SessionStore) Delete(index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.messages) {
		return false, nil
	}
	s.messages = append(s.messages[:index:index], s.messages[index+1:]...)
	return true, s.persistLocked()
}

// Clear empties the sequence, forgets the persisted history and the last error
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = nil
	s.lastError = nil
	if err := s.store.Remove(ChatHistoryKey); err != nil {
		return err
	}
	LogDebug("Cleared chat history")
	return nil
}

// ChangeCategory switches and remembers the active category, clearing the
// chat when asked
func (s *SessionStore) ChangeCategory(category string, clearChat bool) error {
	s.mu.Lock()
	s.category = NormalizeCategory(category)
	err := s.store.Set(CategoryKey, s.category)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if clearChat {
		return s.Clear()
	}
	return nil
}

// Messages returns a copy of the current sequence
func (s *SessionStore) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

// Loading reports whether a send is in flight
func (s *SessionStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Category returns the active category
func (s *SessionStore) Category() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

// LastError returns the error of the most recent send, nil on success
func (s *SessionStore) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Stats counts messages by author
func (s *SessionStore) Stats() MessageStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CountMessages(s.messages)
}

// HasMessages reports whether the sequence is non-empty
func (s *SessionStore) HasMessages() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages) > 0
}

// LastMessage returns the newest message
func (s *SessionStore) LastMessage() (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// Snapshot builds an export snapshot of the current sequence
func (s *SessionStore) Snapshot(user *User) (*Session, error) {
	s.mu.Lock()
	messages := append([]Message(nil), s.messages...)
	category := s.category
	s.mu.Unlock()
	return s.normalizer.NormalizeSession(messages, category, user)
}

// ExportText renders the history as plain text blocks separated by rules
func (s *SessionStore) ExportText() string {
	return FormatTranscript(s.Messages())
}

// FormatTranscript renders messages as "[time] Anda|AI:" blocks joined by "---"
func FormatTranscript(messages []Message) string {
	blocks := make([]string, 0, len(messages))
	for _, m := range messages {
		who := "AI"
		if m.Role == RoleUser {
			who = "Anda"
		}
		blocks = append(blocks, fmt.Sprintf("[%s] %s:\n%s\n", formatLocalTime(m.GetTimestamp()), who, m.Content))
	}
	return strings.Join(blocks, "\n---\n\n")
}

func formatLocalTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2/1/2006, 15.04.05")
}

// persistLocked writes the sequence; an empty sequence removes the key so
// the next Load starts from the welcome message. Caller holds mu.
func (s *SessionStore) persistLocked() error {
	if len(s.messages) == 0 {
		return s.store.Remove(ChatHistoryKey)
	}
	return SetJSON(s.store, ChatHistoryKey, s.messages)
}

func (s *SessionStore) track(activity string) {
	if s.tracker == nil {
		return
	}
	if err := s.tracker.TrackActivity(activity); err != nil {
		LogWarn("Failed to track %s activity: %v", activity, err)
	}
}
