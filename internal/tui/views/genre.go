package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const genreColumns = 3

// GenreChosenMsg carries the selected win-condition genre; empty means none.
type GenreChosenMsg struct {
	Genre string
}

// GenreModel is the genre picker grid.
type GenreModel struct {
	genres []string
	cursor int
	target int

	width  int
	height int
}

// NewGenreModel creates the picker. target is the number of movies of the
// chosen genre needed to win.
func NewGenreModel(genres []string, target int) GenreModel {
	return GenreModel{genres: genres, target: target}
}

// SetSize updates the view dimensions.
func (m *GenreModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the genre under the cursor.
func (m GenreModel) Selected() string {
	if len(m.genres) == 0 {
		return ""
	}
	return m.genres[m.cursor]
}

// Update handles messages.
func (m GenreModel) Update(msg tea.Msg) (GenreModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(m.genres)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor-genreColumns >= 0 {
			m.cursor -= genreColumns
		}
	case "down", "j":
		if m.cursor+genreColumns < len(m.genres) {
			m.cursor += genreColumns
		}
	case "enter":
		genre := m.Selected()
		return m, func() tea.Msg { return GenreChosenMsg{Genre: genre} }
	case "n", "esc":
		return m, func() tea.Msg { return GenreChosenMsg{} }
	}
	return m, nil
}

// View renders the genre grid.
func (m GenreModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Pick a genre"))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render(
		fmt.Sprintf("First to play %d movies of this genre wins.", m.target)))
	b.WriteString("\n\n")

	var rows []string
	for start := 0; start < len(m.genres); start += genreColumns {
		var cells []string
		for i := start; i < start+genreColumns && i < len(m.genres); i++ {
			style := itemStyle
			if i == m.cursor {
				style = itemSelectedStyle
			}
			cells = append(cells, style.Width(14).Render(m.genres[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("arrows: move • enter: select • n: no genre"))
	return b.String()
}
