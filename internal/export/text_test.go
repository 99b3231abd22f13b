package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/roblox-ai-studio/internal"
)

func TestTextExporter_Export(t *testing.T) {
	session := internal.CreateTestSessionWithMessages("t1", []internal.Message{
		{Role: internal.RoleUser, Content: "Halo", Timestamp: "2024-12-01T10:00:00Z"},
		{Role: internal.RoleAssistant, Content: "Hai juga", Timestamp: "2024-12-01T10:00:05Z"},
	})

	var buf bytes.Buffer
	if err := (&TextExporter{}).Export(session, &buf); err != nil {
		t.Fatalf("TextExporter.Export() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"] Anda:\nHalo\n", "] AI:\nHai juga\n", "\n---\n\n"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output should contain %q, got:\n%s", want, output)
		}
	}
	if strings.Count(output, "---") != 1 {
		t.Errorf("two messages should be separated by exactly one rule, got:\n%s", output)
	}
}

func TestTextExporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextExporter{}).Export(internal.CreateTestSessionWithMessages("t2", nil), &buf); err != nil {
		t.Fatalf("TextExporter.Export() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty session should export nothing, got %q", buf.String())
	}
}
