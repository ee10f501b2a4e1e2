// Package tui is a terminal host for a browse.Session: a category bar, a
// search field and a scrollable list of colored groups.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sw33tLie/catalogo/pkg/browse"
	"github.com/sw33tLie/catalogo/pkg/catalog"
	"github.com/sw33tLie/catalogo/pkg/taxonomy"
)

const noModal = -1

type Model struct {
	session  *browse.Session
	controls []catalog.Control
	state    browse.State
	input    textinput.Model
	viewport viewport.Model
	styles   Styles

	// modal is the index of the open control, or noModal.
	modal       int
	modalCursor int

	width  int
	height int
}

func New(session *browse.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "Search name, description or tag..."
	ti.Prompt = "/ "

	m := Model{
		session:  session,
		controls: session.Controls(),
		state:    browse.Initial(),
		input:    ti,
		viewport: viewport.New(80, 20),
		styles:   DefaultStyles(),
		modal:    noModal,
	}
	m.refresh()
	return m
}

// State is the current browse state.
func (m Model) State() browse.State { return m.state }

// ModalOpen reports whether a sub-category modal is showing.
func (m Model) ModalOpen() bool { return m.modal != noModal }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 6
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.modal != noModal:
			return m.updateModal(msg)
		case m.input.Focused():
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return m, tea.Quit
	case "/":
		cmd := m.input.Focus()
		return m, cmd
	case "a":
		m.state = m.state.SelectAll()
		m.input.SetValue("")
		m.refresh()
		return m, nil
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		if i := int(key[0] - '1'); i < len(m.controls) {
			m.modal, m.modalCursor = i, 0
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.state = m.state.SubmitSearch()
		m.input.Blur()
		m.refresh()
		return m, nil
	case "esc":
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	before := m.state.Selector
	m.state = m.state.EditQuery(m.input.Value())
	if m.state.Selector != before {
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	subs := m.controls[m.modal].Subcategories
	switch msg.String() {
	case "esc", "q":
		m.modal = noModal
	case "up", "k":
		if m.modalCursor > 0 {
			m.modalCursor--
		}
	case "down", "j":
		if m.modalCursor < len(subs)-1 {
			m.modalCursor++
		}
	case "enter":
		m.state = m.state.SelectCategory(subs[m.modalCursor])
		m.input.SetValue("")
		m.modal = noModal
		m.refresh()
	}
	return m, nil
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderView(m.session.Render(m.state)))
	m.viewport.GotoTop()
}

func (m Model) renderView(view browse.View) string {
	if view.Failed || view.Empty {
		return m.styles.Message.Render(view.Message)
	}
	var sb strings.Builder
	for i, g := range view.Groups {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(m.styles.Category(g.Color).Render("▍" + g.Category))
		sb.WriteString("\n")
		for _, it := range g.Items {
			sb.WriteString(m.renderItem(it))
		}
	}
	return sb.String()
}

func (m Model) renderItem(it catalog.Item) string {
	var sb strings.Builder
	sb.WriteString("  " + m.styles.ItemName.Render(it.Name))
	if it.CreationYear != "" {
		sb.WriteString(m.styles.Muted.Render(" (" + it.CreationYear + ")"))
	}
	sb.WriteString("\n")
	if it.Description != "" {
		sb.WriteString("    " + it.Description + "\n")
	}
	if len(it.Tags) > 0 {
		tags := make([]string, len(it.Tags))
		for i, t := range it.Tags {
			tags[i] = m.styles.Tag.Render(t)
		}
		sb.WriteString("    " + strings.Join(tags, " ") + "\n")
	}
	if site := catalog.LinkSite(it.Link); site != "" {
		sb.WriteString(m.styles.Muted.Render("    "+site+" "+it.Link) + "\n")
	}
	return sb.String()
}

func (m Model) renderControls() string {
	parts := []string{}
	all := "[a] " + catalog.AllControl
	if m.state.AllActive {
		parts = append(parts, m.styles.Active.Render(all))
	} else {
		parts = append(parts, m.styles.Control.Render(all))
	}
	for i, c := range m.controls {
		if i >= 9 {
			break
		}
		parts = append(parts, m.styles.Control.Inherit(m.styles.Category(c.Color)).Render(fmt.Sprintf("[%d] %s", i+1, c.SuperCategory)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderModal() string {
	c := m.controls[m.modal]
	var sb strings.Builder
	sb.WriteString(m.styles.Category(c.Color).Render(c.SuperCategory) + "\n\n")
	for i, sub := range c.Subcategories {
		if i == m.modalCursor {
			sb.WriteString(m.styles.Selected.Render("> "+sub) + "\n")
			continue
		}
		sb.WriteString("  " + sub + "\n")
	}
	return m.styles.Modal.BorderForeground(lipgloss.Color(taxonomy.Hex(c.Color))).Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Catálogo") + m.styles.Muted.Render(fmt.Sprintf("  %d items", m.session.Len())) + "\n")
	sb.WriteString(m.renderControls() + "\n")
	sb.WriteString(m.input.View() + "\n\n")
	if m.modal != noModal {
		sb.WriteString(m.renderModal() + "\n")
		sb.WriteString(m.styles.Help.Render("↑/↓ move • enter select • esc close"))
		return sb.String()
	}
	sb.WriteString(m.viewport.View() + "\n")
	sb.WriteString(m.styles.Help.Render("/ search • a all • 1-9 categories • ↑/↓ scroll • q quit"))
	return sb.String()
}
