// Package tui is the interactive terminal shell: an input area, the formalized
// output, copy and theme toggle. All state changes go through a session.Session.
package tui

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/formalized/internal/core/domain"
	"github.com/baditaflorin/formalized/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formalizedMsg struct {
	output string
	err    error
}

type copiedMsg struct {
	err error
}

// Model is the bubbletea model of the shell.
type Model struct {
	ctx     context.Context
	session *session.Session

	input   textarea.Model
	output  viewport.Model
	spinner spinner.Model
	styles  Styles

	loading bool
	width   int
	height  int
}

// New creates the shell model.
func New(ctx context.Context, s *session.Session) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter informal text here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(6)
	ta.Focus()

	vp := viewport.New(80, 6)
	vp.SetContent("Formalized text will appear here...")

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		session: s,
		input:   ta,
		output:  vp,
		spinner: sp,
		styles:  StylesFor(s.Snapshot().Theme),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		inner := msg.Width - 4
		if inner < 20 {
			inner = 20
		}
		boxHeight := (msg.Height - 10) / 2
		if boxHeight < 3 {
			boxHeight = 3
		}
		m.input.SetWidth(inner)
		m.input.SetHeight(boxHeight)
		m.output.Width = inner
		m.output.Height = boxHeight
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+f":
			return m.startFormalize()
		case "ctrl+y":
			if m.loading {
				return m, nil
			}
			return m, m.copyCmd()
		case "ctrl+t":
			m.styles = StylesFor(m.session.ToggleTheme())
			return m, nil
		}

	case formalizedMsg:
		m.loading = false
		if msg.err == nil {
			m.output.SetContent(msg.output)
			m.output.GotoTop()
		}
		return m, nil

	case copiedMsg:
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) startFormalize() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	m.session.SetInput(m.input.Value())
	if strings.TrimSpace(m.input.Value()) == "" {
		// Fails fast and records the message; no request is issued.
		_, _ = m.session.Formalize(m.ctx)
		return m, nil
	}

	m.loading = true
	m.output.SetContent("")
	return m, tea.Batch(m.formalizeCmd(), m.spinner.Tick)
}

func (m Model) formalizeCmd() tea.Cmd {
	s, ctx := m.session, m.ctx
	return func() tea.Msg {
		out, err := s.Formalize(ctx)
		return formalizedMsg{output: out, err: err}
	}
}

func (m Model) copyCmd() tea.Cmd {
	s := m.session
	return func() tea.Msg {
		return copiedMsg{err: s.Copy()}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	state := m.session.Snapshot()
	st := m.styles

	themeIcon := "🌙"
	if state.Theme == domain.ThemeDark {
		themeIcon = "☀️"
	}

	var b strings.Builder
	b.WriteString(st.Title.Render("Formalized") + "  " + themeIcon + "\n")
	b.WriteString(st.Tagline.Render("Instantly elevate your writing to a professional standard.") + "\n\n")

	b.WriteString(st.Box.Render(m.input.View()) + "\n")
	b.WriteString(st.Count.Render(charCount(m.input.Value())) + "\n")

	b.WriteString(st.Box.Render(m.output.View()) + "\n")
	b.WriteString(st.Count.Render(charCount(state.Output)) + "\n\n")

	b.WriteString(m.buttons(state) + "\n")
	if state.Message != "" {
		b.WriteString(st.Error.Render(state.Message) + "\n")
	}
	b.WriteString(st.Help.Render(fmt.Sprintf("strategy: %s • ctrl+t theme • esc quit", m.session.Strategy())))

	return lipgloss.NewStyle().Padding(1, 1).Render(b.String())
}

func (m Model) buttons(state domain.State) string {
	st := m.styles
	formalize := st.Button.Render("[ctrl+f] Formalize")
	copyButton := st.Button.Render("[ctrl+y] Copy")

	switch {
	case m.loading:
		formalize = st.Disabled.Render("Formalizing...") + " " + m.spinner.View()
		copyButton = st.Disabled.Render("[ctrl+y] Copy")
	case m.input.Value() == "":
		formalize = st.Disabled.Render("[ctrl+f] Formalize")
	}
	if state.Output == "" && !m.loading {
		copyButton = st.Disabled.Render("[ctrl+y] Copy")
	}
	return formalize + "   " + copyButton
}

func charCount(s string) string {
	return fmt.Sprintf("%d characters", utf8.RuneCountInString(s))
}

// Run starts the shell on the terminal and blocks until it exits.
func Run(ctx context.Context, s *session.Session) error {
	p := tea.NewProgram(New(ctx, s), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
