package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// LoadFixture loads a test fixture file
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", path))
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", path, err)
	}
	return data
}

// SetEnv sets environment variables for the duration of the test and clears
// the key variables that would otherwise leak in from the developer's shell
func SetEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, key := range []string{
		"ANTHROPIC_API_KEY", "REACT_APP_ANTHROPIC_API_KEY", "GEMINI_API_KEY",
		"ROBLOX_AI_PROVIDER", "ROBLOX_AI_MODEL", "ROBLOX_AI_BASE_URL",
		"ROBLOX_AI_STORAGE", "ROBLOX_AI_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// JSONMarshal marshals a value to JSON for testing
func JSONMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal JSON: %v", err)
	}
	return data
}

// JSONUnmarshal unmarshals JSON for testing
func JSONUnmarshal(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
}
