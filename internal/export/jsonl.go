package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/roblox-ai-studio/internal"
)

// JSONLExporter exports sessions in JSONL format (one message per line)
type JSONLExporter struct{}

// Export exports a session to JSONL format. Each line carries the
// persisted message fields plus the number of code blocks in the content.
func (e *JSONLExporter) Export(session *internal.Session, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for _, msg := range session.Messages {
		obj := map[string]interface{}{
			"role":    msg.Role,
			"content": msg.Content,
		}

		if msg.Timestamp != "" {
			obj["timestamp"] = msg.Timestamp
		}
		if msg.Category != "" {
			obj["category"] = msg.Category
		}
		if msg.IsError {
			obj["isError"] = true
		}
		if msg.Edited {
			obj["edited"] = true
		}
		if n := len(internal.ExtractCodeBlocks(msg.Content)); n > 0 {
			obj["codeBlocks"] = n
		}

		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
