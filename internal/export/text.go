package export

import (
	"io"

	"github.com/iksnae/roblox-ai-studio/internal"
)

// TextExporter writes the plain transcript the chat view offers for download
type TextExporter struct{}

// Export exports a session as "[time] Anda|AI:" blocks
func (e *TextExporter) Export(session *internal.Session, w io.Writer) error {
	_, err := io.WriteString(w, internal.FormatTranscript(session.Messages))
	return err
}

// Extension returns the file extension for this format
func (e *TextExporter) Extension() string {
	return "txt"
}
