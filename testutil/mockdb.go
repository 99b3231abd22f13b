package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

const createLocalStorageSQL = `
	CREATE TABLE IF NOT EXISTS localStorage (
		key TEXT PRIMARY KEY,
		value TEXT
	)`

// SampleChatHistory is a persisted history of one exchange with a code reply
const SampleChatHistory = `[` +
	`{"role":"assistant","content":"Halo! Ada yang bisa saya bantu?","timestamp":"2024-12-01T10:00:00.000Z"},` +
	`{"role":"user","content":"Buat part merah","timestamp":"2024-12-01T10:01:00.000Z"},` +
	`{"role":"assistant","content":"Berikut kodenya:\n` + "```lua\\nlocal part = Instance.new(\\\"Part\\\")\\n```" + `\nSelesai.","timestamp":"2024-12-01T10:01:05.000Z","category":"coding"}` +
	`]`

// CreateInMemoryDB creates an in-memory SQLite database with the localStorage table
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createLocalStorageSQL); err != nil {
		db.Close()
		t.Fatalf("Failed to create localStorage table: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// CreateTestDB creates a test database seeded with a chat history, a
// signed-in user and initialised counters
func CreateTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db := CreateInMemoryDB(t)

	items := []struct {
		key   string
		value string
	}{
		{"roblox_ai_chat_history", SampleChatHistory},
		{"roblox_ai_user", `{"id":"2","name":"Regular User","email":"user@roblox.ai","role":"user","token":"fake-jwt-token-test","createdAt":"2024-12-01T09:00:00Z"}`},
		{"roblox_ai_token", "fake-jwt-token-test"},
		{"current_user_id", "2"},
		{"stats_initialized", "true"},
		{"total_users", "850"},
		{"active_users", "851"},
		{"total_chats", "15641"},
		{"code_snippets", "9385"},
		{"user_rating", "4.9"},
	}

	stmt, err := db.Prepare("INSERT INTO localStorage (key, value) VALUES (?, ?)")
	if err != nil {
		t.Fatalf("Failed to prepare insert statement: %v", err)
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.Exec(item.key, item.value); err != nil {
			t.Fatalf("Failed to insert %s: %v", item.key, err)
		}
	}

	return db
}

// InsertItem writes a raw localStorage entry
func InsertItem(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	insertSQL := "INSERT OR REPLACE INTO localStorage (key, value) VALUES (?, ?)"
	if _, err := db.Exec(insertSQL, key, value); err != nil {
		t.Fatalf("Failed to insert %s: %v", key, err)
	}
}
