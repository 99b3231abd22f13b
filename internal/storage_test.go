package internal

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/iksnae/roblox-ai-studio/testutil"
)

// storeFactories covers every Store implementation with the same contract
func storeFactories() map[string]func(t *testing.T) Store {
	return map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store {
			return NewMemoryStore()
		},
		"sqlite file": func(t *testing.T) Store {
			s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "storage.db"))
			if err != nil {
				t.Fatalf("NewSQLiteStore() error = %v", err)
			}
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
		"sqlite db": func(t *testing.T) Store {
			return NewSQLiteStoreFromDB(testutil.CreateInMemoryDB(t))
		},
	}
}

func TestStore_Contract(t *testing.T) {
	for name, newStore := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)

			if _, found, err := s.Get("missing"); err != nil || found {
				t.Errorf("Get(missing) = found %v, err %v", found, err)
			}

			if err := s.Set("b", "2"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := s.Set("a", "1"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := s.Set("a", "one"); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}

			v, found, err := s.Get("a")
			if err != nil || !found || v != "one" {
				t.Errorf("Get(a) = %q, %v, %v; want one", v, found, err)
			}
			if !Has(s, "b") || Has(s, "c") {
				t.Error("Has() reported the wrong keys")
			}

			keys, err := s.Keys()
			if err != nil {
				t.Fatalf("Keys() error = %v", err)
			}
			if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
				t.Errorf("Keys() = %v, want [a b]", keys)
			}

			if err := s.Remove("a"); err != nil {
				t.Fatalf("Remove() error = %v", err)
			}
			if err := s.Remove("a"); err != nil {
				t.Errorf("Remove() of a missing key error = %v", err)
			}
			if Has(s, "a") {
				t.Error("key a survived Remove()")
			}

			if err := s.Clear(); err != nil {
				t.Fatalf("Clear() error = %v", err)
			}
			if keys, _ := s.Keys(); len(keys) != 0 {
				t.Errorf("Keys() after Clear() = %v", keys)
			}
		})
	}
}

func TestGetSetJSON(t *testing.T) {
	for name, newStore := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)

			in := []Message{{Role: RoleUser, Content: "Halo", Timestamp: "2024-12-01T10:00:00Z"}}
			if err := SetJSON(s, ChatHistoryKey, in); err != nil {
				t.Fatalf("SetJSON() error = %v", err)
			}

			var out []Message
			found, err := GetJSON(s, ChatHistoryKey, &out)
			if err != nil || !found {
				t.Fatalf("GetJSON() = %v, %v", found, err)
			}
			if len(out) != 1 || out[0] != in[0] {
				t.Errorf("GetJSON() = %+v, want %+v", out, in)
			}

			found, err = GetJSON(s, "missing", &out)
			if err != nil || found {
				t.Errorf("GetJSON(missing) = %v, %v", found, err)
			}

			if err := s.Set("broken", "{not json"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			_, err = GetJSON(s, "broken", &out)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) || parseErr.Key != "broken" {
				t.Errorf("GetJSON(broken) error = %v, want *ParseError", err)
			}
		})
	}
}

func TestSQLiteStore_Persists(t *testing.T) {
	_, dbPath := testutil.CreateStorageDir(t)

	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	if s.Path() != dbPath {
		t.Errorf("Path() = %v, want %v", s.Path(), dbPath)
	}
	if err := s.Set(CategoryKey, CategoryDesign); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	got, found := testutil.ReadItem(t, dbPath, CategoryKey)
	if !found || got != CategoryDesign {
		t.Errorf("ReadItem() = %q, %v; want design", got, found)
	}
}

func TestSQLiteStore_ClosedDatabase(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "storage.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	_ = s.Close()

	_, _, err = s.Get("a")
	var storageErr *StorageError
	if !errors.As(err, &storageErr) || storageErr.Op != "get" {
		t.Errorf("Get() on closed store error = %v, want *StorageError", err)
	}
	if err := s.Set("a", "1"); !errors.As(err, &storageErr) {
		t.Errorf("Set() on closed store error = %v, want *StorageError", err)
	}
}
