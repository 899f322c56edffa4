package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/autocomplete"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/catalog"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/clock"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/config"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/game"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/movie"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewLanding ViewType = iota
	ViewGenre
	ViewPlay
	ViewGameOver
)

var errEmptyCatalog = errors.New("catalog has no movies")

type tickMsg time.Time

type eventMsg game.Event

type eventsClosedMsg struct{}

// Deps are the collaborators the app drives.
type Deps struct {
	Engine  *game.Engine
	Index   *autocomplete.Index
	Catalog *catalog.Catalog
	Clock   *clock.Clock
	Config  *config.Config
	Logger  *slog.Logger
	Rand    *rand.Rand
}

// AppModel is the root bubbletea model. It owns the turn clock and routes
// engine events to the views.
type AppModel struct {
	engine  *game.Engine
	catalog *catalog.Catalog
	clock   *clock.Clock
	config  *config.Config
	logger  *slog.Logger
	rng     *rand.Rand
	events  <-chan game.Event

	width  int
	height int
	ready  bool

	currentView ViewType
	err         error

	landingView  views.LandingModel
	genreView    views.GenreModel
	playView     views.PlayModel
	gameOverView views.GameOverModel
}

// NewApp creates the app and subscribes it to the engine.
func NewApp(d Deps) AppModel {
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	genres := d.Config.Genres
	if len(genres) == 0 {
		genres = d.Catalog.Genres()
	}

	return AppModel{
		engine:  d.Engine,
		catalog: d.Catalog,
		clock:   d.Clock,
		config:  d.Config,
		logger:  d.Logger,
		rng:     d.Rand,
		events:  d.Engine.Subscribe(),

		currentView: ViewLanding,

		landingView:  views.NewLandingModel(),
		genreView:    views.NewGenreModel(genres, d.Config.Rules.GenreTarget),
		playView:     views.NewPlayModel(d.Engine, d.Index, d.Clock, d.Config.SuggestionLimit),
		gameOverView: views.NewGameOverModel(),
	}
}

// CurrentView returns the view being shown.
func (m AppModel) CurrentView() ViewType { return m.currentView }

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForEvent(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m AppModel) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(ev)
	}
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - 6
		contentHeight := m.height - 4
		m.landingView.SetSize(contentWidth, contentHeight)
		m.genreView.SetSize(contentWidth, contentHeight)
		m.playView.SetSize(contentWidth, contentHeight)
		m.gameOverView.SetSize(contentWidth, contentHeight)
		return m, nil

	case tickMsg:
		m.onTick()
		return m, tick()

	case eventMsg:
		m.onEvent(game.Event(msg))
		return m, m.waitForEvent()

	case eventsClosedMsg:
		return m, nil

	case views.NamesEnteredMsg:
		for i, name := range msg.Names {
			if err := m.engine.SetPlayerName(i, name); err != nil {
				m.err = err
				return m, nil
			}
		}
		m.err = nil
		m.currentView = ViewGenre
		return m, nil

	case views.GenreChosenMsg:
		if msg.Genre != "" {
			if err := m.engine.SelectGenre(msg.Genre); err != nil {
				m.err = err
				return m, nil
			}
		}
		if err := m.startGame(); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.playView.Reset()
		m.currentView = ViewPlay
		return m, nil

	case views.RestartMsg:
		m.engine.Restart()
		m.clock.Reset()
		m.showLanding()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewLanding:
		m.landingView, cmd = m.landingView.Update(msg)
	case ViewGenre:
		m.genreView, cmd = m.genreView.Update(msg)
	case ViewPlay:
		m.playView, cmd = m.playView.Update(msg)
	case ViewGameOver:
		m.gameOverView, cmd = m.gameOverView.Update(msg)
	}
	return m, cmd
}

func (m *AppModel) onTick() {
	if m.currentView != ViewPlay {
		return
	}
	if _, expired := m.clock.Tick(); !expired {
		return
	}
	turn := m.clock.Turn()
	if m.engine.TimeUp(turn) {
		m.logger.Info("turn clock expired", "turn", turn)
	}
}

func (m *AppModel) onEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventStarted:
		m.clock.StartTurn(0, ev.Active)
	case game.EventGuessAccepted:
		m.clock.StartTurn(ev.Round, ev.Active)
	case game.EventGameOver:
		m.clock.Stop()
		m.gameOverView.SetSnapshot(m.engine.Snapshot())
		m.currentView = ViewGameOver
	case game.EventRestarted:
		if m.currentView != ViewLanding {
			m.showLanding()
		}
	}
}

func (m *AppModel) showLanding() {
	var names [2]string
	for i, p := range m.engine.Players() {
		names[i] = p.Username()
	}
	m.landingView.Reset(names)
	m.currentView = ViewLanding
}

func (m *AppModel) startGame() error {
	seed, err := m.pickSeed()
	if err != nil {
		return err
	}
	m.clock.Reset()
	if err := m.engine.Start(seed, m.config.FirstPlayerIndex()); err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	m.clock.StartTurn(0, m.engine.ActiveIndex())
	return nil
}

func (m *AppModel) pickSeed() (*movie.Movie, error) {
	if title := m.config.SeedTitle; title != "" {
		seed, err := m.catalog.ByTitle(title)
		if err == nil {
			return seed, nil
		}
		m.logger.Warn("seed title not in catalog, picking at random", "title", title, "error", err)
	}
	seed := m.catalog.Random(m.rng)
	if seed == nil {
		return nil, errEmptyCatalog
	}
	return seed, nil
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var content string
	switch m.currentView {
	case ViewLanding:
		content = m.landingView.View()
	case ViewGenre:
		content = m.genreView.View()
	case ViewPlay:
		content = m.playView.View()
	case ViewGameOver:
		content = m.gameOverView.View()
	}
	if m.err != nil {
		content += "\n\n" + ErrorStyle.Render(m.err.Error())
	}

	header := HeaderStyle.Render("🎬 Movie Battle")
	body := ContentStyle.
		Width(m.width - 2).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, strings.TrimRight(body, "\n"))
}
