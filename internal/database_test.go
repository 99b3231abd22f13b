package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iksnae/roblox-ai-studio/testutil"
)

func TestOpenDatabase(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  int // localStorage rows after opening
	}{
		{
			name: "existing database",
			setup: func(t *testing.T) string {
				_, dbPath := testutil.CreateStorageDir(t)
				testutil.CreateSQLiteFixture(t, dbPath)
				return dbPath
			},
			want: 1,
		},
		{
			name: "new file in missing directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nested", "dir", "storage.db")
			},
			want: 0,
		},
		{
			name: "in memory",
			setup: func(t *testing.T) string {
				return ":memory:"
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbPath := tt.setup(t)
			db, err := OpenDatabase(dbPath)
			if err != nil {
				t.Fatalf("OpenDatabase() error = %v", err)
			}
			defer db.Close()

			var count int
			if err := db.QueryRow("SELECT COUNT(*) FROM localStorage").Scan(&count); err != nil {
				t.Fatalf("localStorage table missing: %v", err)
			}
			if count != tt.want {
				t.Errorf("row count = %d, want %d", count, tt.want)
			}
		})
	}
}

func TestOpenDatabase_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write blocker: %v", err)
	}

	// the parent "directory" is a regular file
	if _, err := OpenDatabase(filepath.Join(blocker, "storage.db")); err == nil {
		t.Error("OpenDatabase() should fail when the directory cannot be created")
	}
}

func TestQueryLocalStorage(t *testing.T) {
	db := testutil.CreateTestDB(t)
	testutil.InsertItem(t, db, "null_value", "")
	if _, err := db.Exec("UPDATE localStorage SET value = NULL WHERE key = 'null_value'"); err != nil {
		t.Fatalf("Failed to null value: %v", err)
	}

	tests := []struct {
		name     string
		pattern  string
		wantKeys []string
	}{
		{
			name:     "prefix",
			pattern:  "roblox_ai_%",
			wantKeys: []string{ChatHistoryKey, TokenKey, UserKey},
		},
		{
			name:     "exact",
			pattern:  CurrentUserIDKey,
			wantKeys: []string{CurrentUserIDKey},
		},
		{
			name:     "null values skipped",
			pattern:  "null_%",
			wantKeys: nil,
		},
		{
			name:     "no match",
			pattern:  "missing",
			wantKeys: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := QueryLocalStorage(db, tt.pattern)
			if err != nil {
				t.Fatalf("QueryLocalStorage() error = %v", err)
			}
			if len(pairs) != len(tt.wantKeys) {
				t.Fatalf("QueryLocalStorage(%q) returned %d pairs, want %d", tt.pattern, len(pairs), len(tt.wantKeys))
			}
			for i, p := range pairs {
				if p.Key != tt.wantKeys[i] {
					t.Errorf("pair %d key = %q, want %q", i, p.Key, tt.wantKeys[i])
				}
			}
		})
	}
}
