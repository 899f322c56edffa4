package game

import (
	"slices"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/movie"
)

// MostRecentMovie returns the tail of the chain, or nil before Start.
func (e *Engine) MostRecentMovie() *movie.Movie {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.window.Tail()
}

// Window returns the chain from oldest to newest.
func (e *Engine) Window() []*movie.Movie {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.window.Movies()
}

// ConnectionsFor returns the contributors credited when title was
// accepted. ok is false when title is not in the window.
func (e *Engine) ConnectionsFor(title string) ([]string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.window.Connections(title)
}

// PlayerFor returns who played title. The seed maps to nil with ok true.
func (e *Engine) PlayerFor(title string) (*Player, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.window.Player(title)
}

// ActivePlayer returns the player whose turn it is.
func (e *Engine) ActivePlayer() *Player {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.players[e.active]
}

// ActiveIndex returns the index of the active player.
func (e *Engine) ActiveIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Players returns both players in seat order.
func (e *Engine) Players() [2]*Player {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.players
}

// Round returns the number of accepted guesses since Start.
func (e *Engine) Round() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.round
}

// Turn returns the token identifying the current turn for TimeUp.
func (e *Engine) Turn() int { return e.Round() }

func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// Winner returns the winning player's index, or -1 while undecided.
func (e *Engine) Winner() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.winner
}

func (e *Engine) Genre() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.genre
}

// Session returns the id of the current game, empty before the first Start.
func (e *Engine) Session() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// PlayerView is a read-only copy of a player's state.
type PlayerView struct {
	Name       string
	Score      int
	GenreCount int
	Usage      map[string]int
}

// Link is one movie in the chain as the UI shows it.
type Link struct {
	Title       string
	Year        int
	Genres      []string
	Connections []string
	Player      string // empty for the seed
}

// Snapshot is a consistent copy of the engine state.
type Snapshot struct {
	Phase   Phase
	Round   int
	Genre   string
	Active  int
	Winner  int
	Cause   Cause
	Players [2]PlayerView
	Chain   []Link
}

// Snapshot copies the engine state under a single lock.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Snapshot{
		Phase:  e.phase,
		Round:  e.round,
		Genre:  e.genre,
		Active: e.active,
		Winner: e.winner,
		Cause:  e.cause,
	}
	for i, p := range e.players {
		s.Players[i] = PlayerView{
			Name:  p.username,
			Score: p.score,
			Usage: p.Usage(),
		}
		if e.genre != "" {
			s.Players[i].GenreCount = p.GenreCount(e.genre)
		}
	}
	for _, m := range e.window.movies {
		link := Link{
			Title:       m.Title(),
			Year:        m.Year(),
			Genres:      m.Genres(),
			Connections: slices.Clone(e.window.connections[m.Title()]),
		}
		if p := e.window.players[m.Title()]; p != nil {
			link.Player = p.username
		}
		s.Chain = append(s.Chain, link)
	}
	return s
}
