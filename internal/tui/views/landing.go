package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NamesEnteredMsg is sent once both players have a name.
type NamesEnteredMsg struct {
	Names [2]string
}

// LandingModel collects the two player names.
type LandingModel struct {
	input textinput.Model
	names [2]string
	step  int
	err   string

	width  int
	height int
}

// NewLandingModel creates the name entry screen.
func NewLandingModel() LandingModel {
	ti := textinput.New()
	ti.Placeholder = "Player 1 name"
	ti.Focus()
	ti.CharLimit = 24
	ti.Width = 30
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return LandingModel{input: ti}
}

// Reset starts name entry again, prefilled with names.
func (m *LandingModel) Reset(names [2]string) {
	m.names = names
	m.step = 0
	m.err = ""
	m.input.Placeholder = "Player 1 name"
	m.input.SetValue(names[0])
	m.input.CursorEnd()
	m.input.Focus()
}

// SetSize updates the view dimensions.
func (m *LandingModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m LandingModel) Update(msg tea.Msg) (LandingModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.err = "Name cannot be empty"
			return m, nil
		}
		m.err = ""
		if m.step == 0 {
			m.names[0] = name
			m.step = 1
			m.input.Placeholder = "Player 2 name"
			m.input.SetValue(m.names[1])
			m.input.CursorEnd()
			return m, nil
		}
		if strings.EqualFold(name, m.names[0]) {
			m.err = "Players need different names"
			return m, nil
		}
		m.names[1] = name
		names := m.names
		return m, func() tea.Msg { return NamesEnteredMsg{Names: names} }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the name entry screen.
func (m LandingModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("MOVIE BATTLE"))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Name a movie that shares an actor, director, writer,"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("cinematographer or composer with the last one."))
	b.WriteString("\n\n")

	if m.step == 1 {
		b.WriteString(labelStyle.Render("Player 1: "))
		b.WriteString(valueStyle.Render(m.names[0]))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("Player %d: ", m.step+1)))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: confirm • ctrl+c: quit"))
	return b.String()
}
