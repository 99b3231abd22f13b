package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/roblox-ai-studio/internal"
)

// MarkdownExporter exports sessions in Markdown format
type MarkdownExporter struct{}

// Export exports a session to Markdown format. Code fences in replies are
// kept verbatim so they render as code.
func (e *MarkdownExporter) Export(session *internal.Session, w io.Writer) error {
	title := session.Metadata.Name
	if title == "" {
		title = internal.AppName
	}
	_, _ = fmt.Fprintf(w, "# %s: %s\n\n", title, session.ID)

	if cat, ok := internal.LookupCategory(session.Category); ok {
		_, _ = fmt.Fprintf(w, "**Category:** %s  \n", cat.Name)
	}
	if session.User != "" {
		_, _ = fmt.Fprintf(w, "**User:** %s  \n", session.User)
	}
	_, _ = fmt.Fprintf(w, "**Source:** %s  \n", session.Source)
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(session.Messages))

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, _ = fmt.Fprintf(w, "## Messages\n\n")

	for i, msg := range session.Messages {
		timestamp := ""
		if msg.Timestamp != "" {
			timestamp = fmt.Sprintf(" (%s)", msg.Timestamp)
		}

		var flags []string
		if msg.Edited {
			flags = append(flags, "edited")
		}
		if msg.IsError {
			flags = append(flags, "error")
		}
		suffix := ""
		if len(flags) > 0 {
			suffix = " _" + strings.Join(flags, ", ") + "_"
		}

		_, _ = fmt.Fprintf(w, "**%s:**%s%s\n\n%s\n\n", roleLabel(msg.Role), timestamp, suffix, escapeMarkdown(msg.Content))

		if i < len(session.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

func roleLabel(role internal.Role) string {
	if role == internal.RoleUser {
		return "You"
	}
	return "AI"
}

// escapeMarkdown escapes bold/underline markers outside fenced code
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
