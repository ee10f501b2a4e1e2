package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sw33tLie/catalogo/pkg/taxonomy"
)

// Styles holds the lipgloss styles of the browser.
type Styles struct {
	Title    lipgloss.Style
	Control  lipgloss.Style
	Active   lipgloss.Style
	ItemName lipgloss.Style
	Muted    lipgloss.Style
	Tag      lipgloss.Style
	Message  lipgloss.Style
	Modal    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06b6d4")),
		Control:  lipgloss.NewStyle().Padding(0, 1),
		Active:   lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#0f172a")).Background(lipgloss.Color("#06b6d4")),
		ItemName: lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
		Tag:      lipgloss.NewStyle().Foreground(lipgloss.Color("#cbd5e1")).Background(lipgloss.Color("#334155")).Padding(0, 1),
		Message:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#f4a340")),
		Modal:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06b6d4")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b")),
	}
}

// Category styles a heading with the color its token resolves to.
func (s Styles) Category(token string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(taxonomy.Hex(token)))
}
