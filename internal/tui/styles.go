package tui

import (
	"github.com/baditaflorin/formalized/internal/core/domain"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for one theme.
type Styles struct {
	Title    lipgloss.Style
	Tagline  lipgloss.Style
	Box      lipgloss.Style
	Count    lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// StylesFor returns the styles of theme.
func StylesFor(theme domain.Theme) Styles {
	fg, muted, accent, border := lipgloss.Color("235"), lipgloss.Color("245"), lipgloss.Color("25"), lipgloss.Color("250")
	if theme == domain.ThemeDark {
		fg, muted, accent, border = lipgloss.Color("252"), lipgloss.Color("243"), lipgloss.Color("111"), lipgloss.Color("238")
	}

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Tagline:  lipgloss.NewStyle().Foreground(muted),
		Box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Foreground(fg).Padding(0, 1),
		Count:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		Button:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Disabled: lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Help:     lipgloss.NewStyle().Foreground(muted),
	}
}
