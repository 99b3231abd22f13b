package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateSQLiteFixture creates a storage file at dbPath holding the sample
// chat history
func CreateSQLiteFixture(t *testing.T, dbPath string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(createLocalStorageSQL); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO localStorage (key, value) VALUES (?, ?)", "roblox_ai_chat_history", SampleChatHistory); err != nil {
		t.Fatalf("Failed to insert chat history: %v", err)
	}
}

// CreateConfigFixture writes a YAML config file into dir and returns its path
func CreateConfigFixture(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config fixture: %v", err)
	}
	return path
}

// CreateStorageDir returns a fresh directory and the storage path inside it
func CreateStorageDir(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	return dir, filepath.Join(dir, "storage.db")
}

// ReadItem reads a raw localStorage entry from the file at dbPath
func ReadItem(t *testing.T, dbPath, key string) (string, bool) {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	var value sql.NullString
	err = db.QueryRow("SELECT value FROM localStorage WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		t.Fatalf("Failed to read %s: %v", key, err)
	}
	return value.String, value.Valid
}
