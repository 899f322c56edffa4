package views

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/autocomplete"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/catalog"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/clock"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/game"
)

const lowTimeSeconds = 10

// PlayModel is the main game screen: the chain, the clocks and the guess
// input with suggestions.
type PlayModel struct {
	engine *game.Engine
	index  *autocomplete.Index
	clock  *clock.Clock
	limit  int
	target int

	input       textinput.Model
	suggestions []autocomplete.Term
	selected    int

	status    string
	statusErr bool

	width  int
	height int
}

// NewPlayModel creates the play screen.
func NewPlayModel(engine *game.Engine, index *autocomplete.Index, clk *clock.Clock, limit int) PlayModel {
	ti := textinput.New()
	ti.Placeholder = "Type a movie title..."
	ti.Focus()
	ti.CharLimit = 120
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return PlayModel{
		engine: engine,
		index:  index,
		clock:  clk,
		limit:  limit,
		target: engine.Rules().GenreTarget,
		input:  ti,
	}
}

// Reset clears the input and status for a new game.
func (m *PlayModel) Reset() {
	m.input.Reset()
	m.input.Focus()
	m.suggestions = nil
	m.selected = 0
	m.status = ""
	m.statusErr = false
}

// SetSize updates the view dimensions.
func (m *PlayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 10 {
		m.input.Width = min(50, width-4)
	}
}

// Suggestions returns the suggestions currently listed.
func (m PlayModel) Suggestions() []autocomplete.Term { return m.suggestions }

// Status returns the last status line and whether it reports a failure.
func (m PlayModel) Status() (string, bool) { return m.status, m.statusErr }

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (PlayModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.submit()
			return m, nil
		case "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.selected < len(m.suggestions)-1 {
				m.selected++
			}
			return m, nil
		case "[":
			m.boost()
			return m, nil
		case "]":
			m.sabotage()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m *PlayModel) refresh() {
	m.selected = 0
	m.suggestions = nil
	prefix := strings.TrimLeftFunc(m.input.Value(), unicode.IsSpace)
	if prefix == "" {
		return
	}
	m.suggestions = m.index.Suggestions(prefix, m.limit)
}

func (m *PlayModel) submit() {
	title := strings.TrimSpace(m.input.Value())
	if len(m.suggestions) > 0 {
		title = m.suggestions[m.selected].Text
	}
	if title == "" {
		return
	}

	out, err := m.engine.SubmitGuess(title)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		m.setStatus(fmt.Sprintf("No movie called %q", title), true)
		return
	case err != nil:
		m.setStatus(err.Error(), true)
		return
	case out.Accepted:
		if !out.GameOver {
			m.clock.StartTurn(out.Round, out.Next)
		}
		m.setStatus(fmt.Sprintf("✓ %s via %s", out.Title, strings.Join(out.Connections, ", ")), false)
	default:
		m.setStatus(fmt.Sprintf("✗ %s: %s", out.Title, out.Reason), true)
	}
	m.input.Reset()
	m.refresh()
}

func (m *PlayModel) boost() {
	if m.clock.Boost(m.engine.ActiveIndex()) {
		m.setStatus("Time boost used", false)
		return
	}
	m.setStatus("No time boosts left", true)
}

func (m *PlayModel) sabotage() {
	if m.clock.Sabotage(m.engine.ActiveIndex()) {
		m.setStatus("Opponent's next turn is shortened", false)
		return
	}
	m.setStatus("Sabotage not available", true)
}

func (m *PlayModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// View renders the play screen.
func (m PlayModel) View() string {
	snap := m.engine.Snapshot()
	var b strings.Builder

	header := fmt.Sprintf("Round %d", snap.Round)
	if snap.Genre != "" {
		header += fmt.Sprintf(" • Genre: %s (first to %d)", snap.Genre, m.target)
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	b.WriteString(m.renderPlayers(snap))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Chain"))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(m.renderChain(snap)))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")
	for i, term := range m.suggestions {
		style := itemStyle
		if i == m.selected {
			style = itemSelectedStyle
		}
		b.WriteString(style.Render(truncate(term.Text, m.width-4)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(successStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: guess • ↑/↓: pick suggestion • [: boost • ]: sabotage • ctrl+c: quit"))
	return b.String()
}

func (m PlayModel) renderPlayers(snap game.Snapshot) string {
	var cells []string
	for i, p := range snap.Players {
		line := fmt.Sprintf("%s  score %d", p.Name, p.Score)
		if snap.Genre != "" {
			line += fmt.Sprintf("  %s %d/%d", snap.Genre, p.GenreCount, m.target)
		}
		line += fmt.Sprintf("  boosts %d  sabotage %d", m.clock.Boosts(i), m.clock.Sabotages(i))

		style := playerStyle
		if i == snap.Active {
			style = activePlayerStyle
			remaining := m.clock.Remaining()
			timer := timerStyle
			if remaining <= lowTimeSeconds {
				timer = timerLowStyle
			}
			line += "  " + timer.Render(fmt.Sprintf("%ds", remaining))
		}
		cells = append(cells, style.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cells...)
}

func (m PlayModel) renderChain(snap game.Snapshot) string {
	return renderChain(snap.Chain, m.width-6)
}

func renderChain(chain []game.Link, width int) string {
	var lines []string
	for _, link := range chain {
		line := valueStyle.Render(truncate(link.Title, width))
		if link.Player == "" {
			line += helpStyle.Render("  (start)")
		} else {
			detail := fmt.Sprintf("  %s via %s", link.Player, strings.Join(link.Connections, ", "))
			line += connectionStyle.Render(truncate(detail, width))
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return helpStyle.Render("(empty)")
	}
	return strings.Join(lines, "\n")
}
