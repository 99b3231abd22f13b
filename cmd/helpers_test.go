package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag of c and its children to its default.
// Flag variables are package globals and survive between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// testEnv points the CLI at a fresh database and the demo provider
type testEnv struct {
	dbPath     string
	configPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("REACT_APP_ANTHROPIC_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ROBLOX_AI_PROVIDER", "")
	t.Setenv("ROBLOX_AI_STORAGE", "")
	return &testEnv{
		dbPath:     filepath.Join(dir, "storage.db"),
		configPath: filepath.Join(dir, "missing-config.yaml"),
	}
}

// run executes the CLI with args against the environment and returns stdout
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	full := append([]string{"--storage", e.dbPath, "--config", e.configPath, "--provider", "demo"}, args...)
	return execute(t, stdin, full...)
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))

	err := rootCmd.Execute()
	return stdout.String(), err
}
