package internal

import (
	"testing"
	"time"
)

func TestNewMessage(t *testing.T) {
	before := time.Now().Add(-time.Second)
	msg := NewMessage(RoleUser, "Halo")

	if msg.Role != RoleUser {
		t.Errorf("Role = %v, want user", msg.Role)
	}
	if msg.Content != "Halo" {
		t.Errorf("Content = %v, want Halo", msg.Content)
	}
	if ts := msg.GetTimestamp(); ts.Before(before) {
		t.Errorf("GetTimestamp() = %v, want a current time", ts)
	}
	if msg.IsError || msg.Edited {
		t.Error("new messages should not be flagged")
	}
}

func TestMessage_GetTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
		wantZero  bool
	}{
		{"rfc3339", "2024-12-01T10:00:00Z", false},
		{"fractional seconds", "2024-12-01T10:00:00.000Z", false},
		{"empty", "", true},
		{"garbage", "yesterday", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Message{Timestamp: tt.timestamp}.GetTimestamp()
			if got.IsZero() != tt.wantZero {
				t.Errorf("GetTimestamp(%q) = %v, wantZero %v", tt.timestamp, got, tt.wantZero)
			}
		})
	}
}

func TestUser_IsAdmin(t *testing.T) {
	var nobody *User
	tests := []struct {
		name string
		user *User
		want bool
	}{
		{"nil", nobody, false},
		{"admin", &User{Role: UserRoleAdmin}, true},
		{"user", &User{Role: UserRoleUser}, false},
		{"moderator", &User{Role: UserRoleModerator}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.IsAdmin(); got != tt.want {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.want)
			}
		})
	}
}
