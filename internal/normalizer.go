package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Normalizer cleans persisted history and converts it to Session snapshots
type Normalizer struct{}

// NewNormalizer creates a new Normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// NormalizeMessages drops entries without content and canonicalises roles,
// categories and timestamps. Order is preserved.
func (n *Normalizer) NormalizeMessages(messages []Message) []Message {
	out := make([]Message, 0, len(messages))
	for _, msg := range messages {
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}
		out = append(out, n.normalizeMessage(msg))
	}
	return out
}

// NormalizeSession builds an export snapshot of messages
func (n *Normalizer) NormalizeSession(messages []Message, category string, user *User) (*Session, error) {
	normalized := n.NormalizeMessages(messages)
	if len(normalized) == 0 {
		return nil, fmt.Errorf("session has no messages")
	}

	metadata := Metadata{
		Name:         AppName,
		MessageCount: len(normalized),
		Stats:        CountMessages(normalized),
		CreatedAt:    normalized[0].Timestamp,
		UpdatedAt:    normalized[len(normalized)-1].Timestamp,
	}
	for _, msg := range normalized {
		if msg.Role == RoleAssistant {
			metadata.CodeBlocks += len(ExtractCodeBlocks(msg.Content))
		}
	}

	session := &Session{
		ID:       sessionID(normalized[0]),
		Source:   "localStorage",
		Category: NormalizeCategory(category),
		Messages: normalized,
		Metadata: metadata,
	}
	if user != nil {
		session.User = user.Email
	}
	return session, nil
}

func (n *Normalizer) normalizeMessage(msg Message) Message {
	msg.Role = n.normalizeRole(msg.Role)
	if msg.Category != "" {
		msg.Category = NormalizeCategory(msg.Category)
	}
	msg.Timestamp = normalizeTimestamp(msg.Timestamp)
	return msg
}

// normalizeRole maps anything that is not the assistant to user
func (n *Normalizer) normalizeRole(role Role) Role {
	switch strings.ToLower(string(role)) {
	case "assistant", "ai", "bot", "model":
		return RoleAssistant
	default:
		return RoleUser
	}
}

// normalizeTimestamp rewrites parsable timestamps (RFC3339 or Unix
// milliseconds) as RFC3339 UTC and leaves anything else untouched
func normalizeTimestamp(ts string) string {
	if ts == "" {
		return ""
	}
	if ms, err := strconv.ParseInt(ts, 10, 64); err == nil {
		return formatTimestamp(ms)
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.UTC().Format(time.RFC3339)
}

// formatTimestamp formats a Unix timestamp (milliseconds) to ISO8601
func formatTimestamp(ts int64) string {
	t := time.UnixMilli(ts).UTC()
	return t.Format(time.RFC3339)
}

// sessionID derives a stable id from the first message
func sessionID(first Message) string {
	if t := first.GetTimestamp(); !t.IsZero() {
		return fmt.Sprintf("chat-%d", t.UnixMilli())
	}
	return "chat"
}

// CountMessages tallies messages by author
func CountMessages(messages []Message) MessageStats {
	var stats MessageStats
	for _, m := range messages {
		switch m.Role {
		case RoleUser:
			stats.User++
		case RoleAssistant:
			stats.Assistant++
		}
	}
	stats.Total = len(messages)
	return stats
}
