package internal

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	codeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	codeLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))
)

// Renderer draws assistant replies for the terminal: prose through glamour,
// fenced code in a bordered box labelled with its language
type Renderer struct {
	prose *glamour.TermRenderer
	plain bool
}

// NewRenderer creates a Renderer wrapping prose at width. A plain renderer
// returns text unchanged, for pipes and tests.
func NewRenderer(width int, plain bool) *Renderer {
	if plain {
		return &Renderer{plain: true}
	}
	if width <= 0 {
		width = 80
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		LogDebug("Markdown renderer unavailable: %v", err)
		return &Renderer{plain: true}
	}
	return &Renderer{prose: tr}
}

// RenderMessage renders one message, marking error messages
func (r *Renderer) RenderMessage(m Message) string {
	if m.IsError && !r.plain {
		return errorMessageStyle.Render(m.Content)
	}
	if m.Role == RoleUser {
		return m.Content
	}
	return r.RenderReply(m.Content)
}

// RenderReply renders the segments of text in order
func (r *Renderer) RenderReply(text string) string {
	if r.plain {
		return text
	}

	var b strings.Builder
	for _, seg := range ParseSegments(text) {
		switch seg.Kind {
		case SegmentCode:
			b.WriteString(r.renderCode(seg))
			b.WriteString("\n")
		default:
			if strings.TrimSpace(seg.Text) == "" {
				continue
			}
			out, err := r.prose.Render(seg.Text)
			if err != nil {
				out = seg.Text
			}
			b.WriteString(strings.TrimRight(out, "\n"))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *Renderer) renderCode(seg Segment) string {
	label := seg.Language
	if label == "" {
		label = "code"
	}
	return codeLabelStyle.Render(label) + "\n" + codeBoxStyle.Render(seg.Code)
}
