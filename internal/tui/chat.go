// Package tui implements the interactive chat view.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/roblox-ai-studio/internal"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	aiLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))
)

const helpText = "Enter send • /retry • /clear • /category <id> • /quit • Ctrl+C exit"

// retryMarker marks a pending retry, which has no new text to echo
const retryMarker = "↻"

// replyMsg carries the outcome of a send back into the update loop
type replyMsg struct {
	message internal.Message
	err     error
}

// Model is the bubbletea model of the chat view
type Model struct {
	ctx      context.Context
	session  *internal.SessionStore
	renderer *internal.Renderer
	mode     string

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	pending string
	status  string
	width   int
}

// New creates the chat view over a loaded session. mode is shown in the
// header, e.g. "demo" or "production".
func New(ctx context.Context, session *internal.SessionStore, mode string) Model {
	ti := textinput.New()
	ti.Placeholder = "Tanya apa saja tentang Roblox Studio..."
	ti.Prompt = "│ "
	ti.CharLimit = 4096
	ti.Width = 80
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	vp := viewport.New(80, 20)

	m := Model{
		ctx:      ctx,
		session:  session,
		renderer: internal.NewRenderer(76, false),
		mode:     mode,
		input:    ti,
		viewport: vp,
		spinner:  sp,
		width:    80,
	}
	m.refresh()
	return m
}

// Run starts the chat view in the alternate screen
func Run(ctx context.Context, session *internal.SessionStore, mode string) error {
	p := tea.NewProgram(New(ctx, session, mode), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.pending != "" {
				return m, nil
			}
			return m.submit()
		}
		if m.pending == "" {
			m.input, tiCmd = m.input.Update(msg)
		}

	case tea.WindowSizeMsg:
		headerHeight, footerHeight := 2, 3
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		m.input.Width = msg.Width - 4
		m.renderer = internal.NewRenderer(msg.Width-4, false)
		m.refresh()

	case spinner.TickMsg:
		if m.pending != "" {
			var spCmd tea.Cmd
			m.spinner, spCmd = m.spinner.Update(msg)
			return m, spCmd
		}

	case replyMsg:
		m.pending = ""
		m.status = ""
		if msg.err != nil {
			m.status = msg.err.Error()
		} else if err := m.session.LastError(); err != nil {
			m.status = err.Error()
		}
		m.refresh()
	}

	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

// submit handles slash commands locally and sends anything else
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	m.input.Reset()
	m.status = ""

	if strings.HasPrefix(text, "/") {
		return m.command(text)
	}

	m.pending = text
	m.refresh()
	return m, tea.Batch(m.spinner.Tick, m.send(func(ctx context.Context) (internal.Message, error) {
		return m.session.Send(ctx, text)
	}))
}

func (m Model) command(text string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(text)
	switch fields[0] {
	case "/quit", "/exit":
		return m, tea.Quit
	case "/retry":
		m.pending = retryMarker
		m.refresh()
		return m, tea.Batch(m.spinner.Tick, m.send(func(ctx context.Context) (internal.Message, error) {
			msg, _, err := m.session.Retry(ctx)
			return msg, err
		}))
	case "/clear":
		if err := m.session.Clear(); err != nil {
			m.status = err.Error()
		}
	case "/category":
		if len(fields) < 2 || !internal.IsValidCategory(fields[1]) {
			m.status = "kategori: general, coding, design, optimization, learning"
		} else if err := m.session.ChangeCategory(fields[1], false); err != nil {
			m.status = err.Error()
		}
	default:
		m.status = fmt.Sprintf("unknown command %s", fields[0])
	}
	m.refresh()
	return m, nil
}

func (m Model) send(fn func(ctx context.Context) (internal.Message, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		msg, err := fn(ctx)
		return replyMsg{message: msg, err: err}
	}
}

// refresh re-renders the transcript into the viewport
func (m *Model) refresh() {
	var b strings.Builder
	for _, msg := range m.session.Messages() {
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n")
	}
	if m.pending != "" && m.pending != retryMarker {
		b.WriteString(userLabelStyle.Render("Anda") + "\n" + m.pending + "\n\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m *Model) renderMessage(msg internal.Message) string {
	label := aiLabelStyle.Render("AI")
	if msg.Role == internal.RoleUser {
		label = userLabelStyle.Render("Anda")
		if msg.Edited {
			label += hintStyle.Render(" (edited)")
		}
	}
	return label + "\n" + m.renderer.RenderMessage(msg) + "\n"
}

func (m Model) View() string {
	header := titleStyle.Render(internal.AppName) +
		categoryStyle.Render(fmt.Sprintf(" [%s • %s]", m.session.Category(), m.mode))

	footer := m.input.View()
	if m.pending != "" {
		footer = m.spinner.View() + " Sedang berpikir..."
	}

	status := hintStyle.Render(helpText)
	if m.status != "" {
		status = statusErrorStyle.Render(m.status)
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, m.viewport.View(), footer, status)
}
