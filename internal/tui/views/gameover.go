package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/clipboard"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/game"
)

// RestartMsg asks the app to start a new game.
type RestartMsg struct{}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// GameOverModel shows the result of a finished game.
type GameOverModel struct {
	snap    game.Snapshot
	copied  bool
	copyErr error

	// copy writes the chain to the clipboard; replaced in tests
	copy func(string) error

	width  int
	height int
}

// NewGameOverModel creates the result screen.
func NewGameOverModel() GameOverModel {
	return GameOverModel{copy: clipboard.Write}
}

// SetSnapshot sets the finished game to show.
func (m *GameOverModel) SetSnapshot(s game.Snapshot) {
	m.snap = s
	m.copied = false
	m.copyErr = nil
}

// SetSize updates the view dimensions.
func (m *GameOverModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m GameOverModel) Update(msg tea.Msg) (GameOverModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r", "R":
			return m, func() tea.Msg { return RestartMsg{} }
		case "q", "Q", "esc":
			return m, tea.Quit
		case "y":
			if err := m.copy(clipboard.FormatChain(m.snap)); err != nil {
				m.copied = false
				m.copyErr = err
				return m, nil
			}
			m.copied = true
			m.copyErr = nil
			return m, clearCopiedAfter(2 * time.Second)
		}
	case clearCopiedMsg:
		m.copied = false
	}
	return m, nil
}

// View renders the result screen.
func (m GameOverModel) View() string {
	var b strings.Builder

	banner := "Game over"
	if m.snap.Winner >= 0 {
		banner = fmt.Sprintf("%s wins!\n%s", m.snap.Players[m.snap.Winner].Name, m.snap.Cause)
	}
	b.WriteString(winnerStyle.Render(banner))
	b.WriteString("\n\n")

	for _, p := range m.snap.Players {
		b.WriteString(labelStyle.Render(p.Name + ": "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d movies", p.Score)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Final chain"))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(renderChain(m.snap.Chain, m.width-6)))
	b.WriteString("\n\n")

	switch {
	case m.copied:
		b.WriteString(successStyle.Render("Copied to clipboard"))
		b.WriteString("\n")
	case m.copyErr != nil:
		b.WriteString(errorStyle.Render(m.copyErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("r: play again • y: copy chain • q: quit"))
	return b.String()
}
