// Package game implements the two-player movie chain: the per-player
// contributor ledger, the rolling window of accepted movies and the
// engine that validates guesses and advances turns.
package game

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/movie"
)

// RandomFirst asks Start to pick the opening player at random.
const RandomFirst = -1

const defaultEventBuffer = 32

// Catalog resolves a typed title to a movie.
type Catalog interface {
	ByTitle(name string) (*movie.Movie, error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRand sets the random source used for RandomFirst.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithEventBuffer sets the buffer size of subscriber channels.
func WithEventBuffer(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.eventBuffer = n
		}
	}
}

// Engine runs one game at a time. All methods are safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	catalog Catalog
	rules   Rules
	logger  *slog.Logger
	rng     *rand.Rand

	session string
	phase   Phase
	players [2]*Player
	active  int
	winner  int
	cause   Cause
	genre   string
	round   int
	window  *Window
	guessed map[string]struct{}

	subscribers []chan Event
	eventBuffer int
}

// NewEngine creates an engine awaiting player names.
func NewEngine(cat Catalog, rules Rules, opts ...Option) *Engine {
	rules = rules.normalized()
	e := &Engine{
		catalog:     cat,
		rules:       rules,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		phase:       PhaseAwaitingNames,
		players:     [2]*Player{NewPlayer(""), NewPlayer("")},
		winner:      -1,
		window:      newWindow(rules.WindowSize),
		guessed:     make(map[string]struct{}),
		eventBuffer: defaultEventBuffer,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e
}

// Rules returns the limits the engine enforces.
func (e *Engine) Rules() Rules { return e.rules }

// SetPlayerName names player idx (0 or 1).
func (e *Engine) SetPlayerName(idx int, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if idx < 0 || idx > 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, idx)
	}
	if e.phase != PhaseAwaitingNames && e.phase != PhaseSelectingGenre {
		return ErrNamesLocked
	}
	e.players[idx].username = name
	return nil
}

// SelectGenre chooses the genre win condition. An empty genre disables it.
func (e *Engine) SelectGenre(genre string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.phase.CanTransitionTo(PhaseSelectingGenre) && e.phase != PhaseSelectingGenre {
		return fmt.Errorf("cannot select genre in phase %s", e.phase)
	}
	if !e.namesSet() {
		return ErrNamesRequired
	}
	e.genre = genre
	e.phase = PhaseSelectingGenre
	return nil
}

// Start begins a game from seed. first is 0, 1 or RandomFirst.
func (e *Engine) Start(seed *movie.Movie, first int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.phase.CanTransitionTo(PhaseInProgress) {
		return fmt.Errorf("cannot start in phase %s", e.phase)
	}
	if seed == nil {
		return ErrNoSeed
	}
	if !e.namesSet() {
		return ErrNamesRequired
	}
	switch {
	case first == RandomFirst:
		first = e.rng.IntN(2)
	case first < 0 || first > 1:
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, first)
	}

	for _, p := range e.players {
		p.Reset()
	}
	clear(e.guessed)
	e.window.seed(seed)
	e.guessed[seed.Title()] = struct{}{}
	e.round = 0
	e.active = first
	e.winner = -1
	e.cause = CauseNone
	e.session = uuid.NewString()
	e.phase = PhaseInProgress

	e.logger.Info("game started",
		"session", e.session,
		"seed", seed.Title(),
		"first", e.players[first].username,
		"genre", e.genre)
	e.publish(Event{Kind: EventStarted, Player: e.players[first].username, Active: first, Title: seed.Title()})
	return nil
}

// SubmitGuess validates title against the tail of the chain for the
// active player. A rejected guess is recorded on the player and the turn
// stays with them. A title the catalog cannot resolve changes nothing.
func (e *Engine) SubmitGuess(title string) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseInProgress {
		return Outcome{}, ErrNotInProgress
	}
	candidate, err := e.catalog.ByTitle(title)
	if err != nil {
		return Outcome{}, fmt.Errorf("resolve guess %q: %w", title, err)
	}

	player := e.players[e.active]
	if _, seen := e.guessed[candidate.Title()]; seen {
		return e.reject(player, candidate, ReasonDuplicate), nil
	}
	e.guessed[candidate.Title()] = struct{}{}

	shared := candidate.SharedPeople(e.window.Tail())
	if len(shared) == 0 {
		return e.reject(player, candidate, ReasonNoConnection), nil
	}

	eligible := make([]string, 0, len(shared))
	for _, name := range shared {
		if player.UsageOf(name) < e.rules.UsageCap {
			eligible = append(eligible, name)
		}
	}
	if len(eligible) == 0 {
		return e.reject(player, candidate, ReasonCapExhausted), nil
	}

	if evicted := e.window.push(candidate, eligible, player); evicted != nil {
		e.logger.Debug("window evicted", "session", e.session, "title", evicted.Title())
	}
	player.RecordUsage(eligible...)
	player.RecordCorrect(candidate)
	player.IncrementScore()
	e.round++

	outcome := Outcome{
		Accepted:    true,
		Reason:      ReasonAccepted,
		Title:       candidate.Title(),
		Connections: slices.Clone(eligible),
	}
	guesser := e.active
	won := e.genre != "" && player.GenreCount(e.genre) >= e.rules.GenreTarget
	if !won {
		e.active = 1 - e.active
	}

	e.logger.Info("guess accepted",
		"session", e.session,
		"round", e.round,
		"player", player.username,
		"title", candidate.Title(),
		"connections", eligible)
	outcome.Round = e.round
	outcome.Next = e.active
	e.publish(Event{
		Kind:        EventGuessAccepted,
		Round:       e.round,
		Player:      player.username,
		Active:      e.active,
		Title:       candidate.Title(),
		Reason:      ReasonAccepted,
		Connections: slices.Clone(eligible),
	})

	if won {
		e.finish(guesser, CauseGenreTarget)
		outcome.GameOver = true
	}
	return outcome, nil
}

func (e *Engine) reject(p *Player, m *movie.Movie, reason Reason) Outcome {
	p.RecordIncorrect(m)
	e.logger.Info("guess rejected",
		"session", e.session,
		"round", e.round,
		"player", p.username,
		"title", m.Title(),
		"reason", reason.String())
	e.publish(Event{
		Kind:   EventGuessRejected,
		Round:  e.round,
		Player: p.username,
		Active: e.active,
		Title:  m.Title(),
		Reason: reason,
	})
	return Outcome{Reason: reason, Title: m.Title(), Round: e.round, Next: e.active}
}

// TimeUp ends the game when the clock for turn expires. The active player
// loses. An expiry for a turn that already advanced, or one arriving after
// the game ended, is ignored and TimeUp returns false.
func (e *Engine) TimeUp(turn int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseInProgress || turn != e.round {
		e.logger.Debug("stale time up ignored", "session", e.session, "turn", turn, "round", e.round)
		return false
	}
	e.finish(1-e.active, CauseTimeout)
	return true
}

func (e *Engine) finish(winner int, cause Cause) {
	e.phase = PhaseGameOver
	e.winner = winner
	e.cause = cause
	e.logger.Info("game over",
		"session", e.session,
		"round", e.round,
		"winner", e.players[winner].username,
		"cause", cause.String())
	e.publish(Event{
		Kind:   EventGameOver,
		Round:  e.round,
		Player: e.players[winner].username,
		Active: e.active,
		Cause:  cause,
	})
}

// Restart returns to name entry. Usernames survive; everything else is
// cleared.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range e.players {
		p.Reset()
	}
	e.window.clear()
	clear(e.guessed)
	e.round = 0
	e.active = 0
	e.winner = -1
	e.cause = CauseNone
	e.genre = ""
	e.phase = PhaseAwaitingNames
	e.logger.Info("game restarted", "session", e.session)
	e.publish(Event{Kind: EventRestarted})
}

// Subscribe returns a channel receiving every subsequent event. Events
// are dropped for a subscriber whose buffer is full.
func (e *Engine) Subscribe() <-chan Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	ch := make(chan Event, e.eventBuffer)
	e.subscribers = append(e.subscribers, ch)
	return ch
}

// Close closes every subscriber channel.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, ch := range e.subscribers {
		close(ch)
	}
	e.subscribers = nil
}

func (e *Engine) publish(ev Event) {
	for _, ch := range e.subscribers {
		select {
		case ch <- ev:
		default:
			e.logger.Warn("event dropped", "session", e.session, "kind", ev.Kind.String())
		}
	}
}

func (e *Engine) namesSet() bool {
	return e.players[0].username != "" && e.players[1].username != ""
}
