package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/autocomplete"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/catalog"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/clock"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/config"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/game"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/movie"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/tui/views"
)

func newTestApp(t *testing.T, turnSeconds int) (AppModel, *game.Engine) {
	t.Helper()
	cat := catalog.New(
		movie.New("Titanic (1997)", 1997, []string{"Drama"}, movie.Credits{Actors: []string{"Leo DiCaprio"}}),
		movie.New("The Revenant (2015)", 2015, []string{"Drama"}, movie.Credits{Actors: []string{"Leo DiCaprio"}}),
	)
	cfg := config.Default()
	cfg.Timing.TurnSeconds = turnSeconds
	cfg.Timing.SabotagedSeconds = turnSeconds
	engine := game.NewEngine(cat, cfg.GameRules())

	app := NewApp(Deps{
		Engine:  engine,
		Index:   autocomplete.Build(cat.AllTitles()),
		Catalog: cat,
		Clock:   clock.New(cfg.ClockSettings()),
		Config:  cfg,
	})
	return app, engine
}

func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok)
	return app
}

// pump delivers the next queued engine event.
func pump(t *testing.T, m AppModel) AppModel {
	t.Helper()
	return update(t, m, m.waitForEvent()())
}

func startGame(t *testing.T, m AppModel) AppModel {
	t.Helper()
	m = update(t, m, views.NamesEnteredMsg{Names: [2]string{"A", "B"}})
	require.Equal(t, ViewGenre, m.CurrentView())
	m = update(t, m, views.GenreChosenMsg{})
	require.Equal(t, ViewPlay, m.CurrentView())
	return pump(t, m)
}

func TestApp_StartsFromConfiguredSeed(t *testing.T) {
	m, engine := newTestApp(t, 30)

	m = startGame(t, m)

	assert.Equal(t, game.PhaseInProgress, engine.Phase())
	assert.Equal(t, "Titanic (1997)", engine.MostRecentMovie().Title())
	assert.True(t, m.clock.Running())
	assert.Equal(t, 30, m.clock.Remaining())
}

func TestApp_ClockExpiryEndsGame(t *testing.T) {
	m, engine := newTestApp(t, 1)
	m = startGame(t, m)

	m = update(t, m, tickMsg{})
	require.Equal(t, game.PhaseGameOver, engine.Phase())
	assert.Equal(t, 1, engine.Winner())

	m = pump(t, m)
	assert.Equal(t, ViewGameOver, m.CurrentView())
	assert.False(t, m.clock.Running())
}

func TestApp_AcceptedGuessRestartsClock(t *testing.T) {
	m, engine := newTestApp(t, 30)
	m = startGame(t, m)
	m = update(t, m, tickMsg{})
	require.Equal(t, 29, m.clock.Remaining())

	_, err := engine.SubmitGuess("The Revenant (2015)")
	require.NoError(t, err)
	m = pump(t, m)

	assert.Equal(t, 30, m.clock.Remaining())
	assert.Equal(t, 1, m.clock.Turn())
}

func TestApp_ClockRunsWithoutEvents(t *testing.T) {
	m, _ := newTestApp(t, 30)
	m = update(t, m, views.NamesEnteredMsg{Names: [2]string{"A", "B"}})
	m = update(t, m, views.GenreChosenMsg{})

	require.True(t, m.clock.Running())
	m = update(t, m, tickMsg{})
	require.Equal(t, 29, m.clock.Remaining())

	// The queued start event arrives late and must not refill the turn.
	m = pump(t, m)
	assert.Equal(t, 29, m.clock.Remaining())
	assert.Equal(t, 0, m.clock.Turn())
}

func TestApp_RestartReturnsToLanding(t *testing.T) {
	m, engine := newTestApp(t, 1)
	m = startGame(t, m)
	m = update(t, m, tickMsg{})
	m = pump(t, m)
	require.Equal(t, ViewGameOver, m.CurrentView())

	m = update(t, m, views.RestartMsg{})

	assert.Equal(t, ViewLanding, m.CurrentView())
	assert.Equal(t, game.PhaseAwaitingNames, engine.Phase())
	assert.Equal(t, "A", engine.Players()[0].Username())
}

func TestApp_ViewBeforeResize(t *testing.T) {
	m, _ := newTestApp(t, 30)

	assert.Equal(t, "Loading...", m.View())

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Contains(t, m.View(), "MOVIE BATTLE")
}
