package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iksnae/roblox-ai-studio/internal"
)

func TestJSONLExporter_Export(t *testing.T) {
	tests := []struct {
		name      string
		session   *internal.Session
		wantLines int
		want      []string
		notWant   []string
	}{
		{
			name:      "empty session",
			session:   internal.CreateTestSessionWithMessages("test1", []internal.Message{}),
			wantLines: 0,
		},
		{
			name:      "session with messages",
			session:   internal.CreateTestSession("test2"),
			wantLines: 2,
			want: []string{
				`"role":"user"`,
				`"role":"assistant"`,
				`"codeBlocks":1`,
				`"category":"coding"`,
			},
		},
		{
			name: "error and edited flags",
			session: internal.CreateTestSessionWithMessages("test3", []internal.Message{
				{Role: internal.RoleUser, Content: "Hello", Timestamp: "2023-01-01T00:00:00Z", Edited: true},
				{Role: internal.RoleAssistant, Content: "❌ gagal", IsError: true},
			}),
			wantLines: 2,
			want: []string{
				`"timestamp":"2023-01-01T00:00:00Z"`,
				`"edited":true`,
				`"isError":true`,
			},
		},
		{
			name: "session without timestamp",
			session: internal.CreateTestSessionWithMessages("test4", []internal.Message{
				{Role: internal.RoleUser, Content: "Hello"},
			}),
			wantLines: 1,
			want:      []string{`"role":"user"`, `"content":"Hello"`},
			notWant:   []string{"timestamp", "codeBlocks"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&JSONLExporter{}).Export(tt.session, &buf); err != nil {
				t.Fatalf("JSONLExporter.Export() error = %v", err)
			}

			output := buf.String()
			lines := strings.Split(strings.TrimSpace(output), "\n")
			if output == "" {
				lines = nil
			}
			if len(lines) != tt.wantLines {
				t.Fatalf("got %d lines, want %d:\n%s", len(lines), tt.wantLines, output)
			}
			for _, line := range lines {
				var obj map[string]interface{}
				if err := json.Unmarshal([]byte(line), &obj); err != nil {
					t.Errorf("line is not valid JSON: %v\n%s", err, line)
				}
			}
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("Output should contain %q, got:\n%s", want, output)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(output, notWant) {
					t.Errorf("Output should not contain %q, got:\n%s", notWant, output)
				}
			}
		})
	}
}

func TestJSONLExporter_Extension(t *testing.T) {
	exporter := &JSONLExporter{}
	if got := exporter.Extension(); got != "jsonl" {
		t.Errorf("JSONLExporter.Extension() = %v, want jsonl", got)
	}
}
