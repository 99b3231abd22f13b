package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/iksnae/roblox-ai-studio/internal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		want    string
	}{
		{
			name: "version flag",
			args: []string{"--version"},
			want: "dev",
		},
		{
			name:    "nonexistent command",
			args:    []string{"nonexistent-command"},
			wantErr: true,
		},
		{
			name:    "invalid provider",
			args:    []string{"--provider", "openai", "--config", "/nonexistent/config.yaml", "stats"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.want != "" && !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	want := []string{
		"chat", "send", "history", "retry", "edit", "delete", "clear",
		"category", "export", "stats", "login", "register", "logout",
		"whoami", "users", "analytics", "settings", "status", "prompts",
		"inspect", "upgrade",
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "storage", "config", "provider", "ephemeral", "plain"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root command should have --%s flag", name)
		}
	}
}

// syncCounter is a log sink recording how often it was flushed
type syncCounter struct {
	bytes.Buffer
	syncs int
}

func (s *syncCounter) Sync() error {
	s.syncs++
	return nil
}

func TestRun_FlushesLoggerOnError(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"success", []string{"--version"}, 0},
		{"failure", []string{"nonexistent-command"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &syncCounter{}
			core := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), sink, zapcore.DebugLevel)
			internal.SetLogger(zap.New(core))
			defer internal.ResetLogger()

			resetFlags(rootCmd)
			rootCmd.SetArgs(tt.args)
			rootCmd.SetOut(io.Discard)
			rootCmd.SetErr(io.Discard)

			if code := run(); code != tt.wantCode {
				t.Errorf("run() = %d, want %d", code, tt.wantCode)
			}
			if sink.syncs == 0 {
				t.Error("run() returned without flushing the logger")
			}
		})
	}
}
