package internal

import (
	"time"
)

// Role is the author of a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of the chat history, persisted as JSON under ChatHistoryKey
type Message struct {
	Role      Role   `json:"role" yaml:"role"`
	Content   string `json:"content" yaml:"content"`
	Timestamp string `json:"timestamp" yaml:"timestamp"` // RFC3339
	Category  string `json:"category,omitempty" yaml:"category,omitempty"`
	IsError   bool   `json:"isError,omitempty" yaml:"is_error,omitempty"`
	Edited    bool   `json:"edited,omitempty" yaml:"edited,omitempty"`
}

// NewMessage creates a message stamped with the current time
func NewMessage(role Role, content string) Message {
	return Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// GetTimestamp parses the message timestamp; zero time if unset or invalid
func (m Message) GetTimestamp() time.Time {
	if m.Timestamp == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, m.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// MessageStats counts messages by author
type MessageStats struct {
	User      int `json:"user"`
	Assistant int `json:"assistant"`
	Total     int `json:"total"`
}

// UserRole is an account role
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleUser      UserRole = "user"
	UserRoleModerator UserRole = "moderator"
)

// User is the signed-in account record returned by the auth service
type User struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Email     string   `json:"email" yaml:"email"`
	Role      UserRole `json:"role" yaml:"role"`
	Token     string   `json:"token" yaml:"-"`
	Avatar    string   `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	CreatedAt string   `json:"createdAt" yaml:"created_at"`
}

// IsAdmin reports whether the user may open the admin views
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}

// SiteConfig is the part of Settings persisted under SiteConfigKey
type SiteConfig struct {
	SiteName string `json:"siteName" yaml:"site_name"`
	Tagline  string `json:"tagline" yaml:"tagline"`
	LogoURL  string `json:"logoUrl" yaml:"logo_url"`
}

// APISettings describes the completion model in use
type APISettings struct {
	Model       string  `json:"model" yaml:"model"`
	MaxTokens   int     `json:"maxTokens" yaml:"max_tokens"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// FeatureFlags toggles optional behaviour
type FeatureFlags struct {
	UserRegistration bool `json:"userRegistration" yaml:"user_registration"`
	Maintenance      bool `json:"maintenance" yaml:"maintenance"`
	Analytics        bool `json:"analytics" yaml:"analytics"`
}

// UISettings holds presentation preferences
type UISettings struct {
	Theme    string `json:"theme" yaml:"theme"`
	Language string `json:"language" yaml:"language"`
}

// Settings is the site configuration blob
type Settings struct {
	API      APISettings  `json:"api" yaml:"api"`
	Features FeatureFlags `json:"features" yaml:"features"`
	UI       UISettings   `json:"ui" yaml:"ui"`
	Site     SiteConfig   `json:"site" yaml:"site"`
}
