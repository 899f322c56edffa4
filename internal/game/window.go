package game

import (
	"slices"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/movie"
)

// Window is the rolling chain of recently accepted movies. The deque and
// its two per-title maps always change together.
type Window struct {
	capacity    int
	movies      []*movie.Movie
	connections map[string][]string // nil for the seed
	players     map[string]*Player  // nil for the seed
}

func newWindow(capacity int) *Window {
	return &Window{
		capacity:    capacity,
		connections: make(map[string][]string),
		players:     make(map[string]*Player),
	}
}

// seed empties the window and starts it with m.
func (w *Window) seed(m *movie.Movie) {
	w.clear()
	w.movies = append(w.movies, m)
	w.connections[m.Title()] = nil
	w.players[m.Title()] = nil
}

func (w *Window) clear() {
	w.movies = w.movies[:0]
	clear(w.connections)
	clear(w.players)
}

// push appends m, evicting the oldest entry first when full. It returns
// the evicted movie, if any.
func (w *Window) push(m *movie.Movie, connections []string, p *Player) *movie.Movie {
	var evicted *movie.Movie
	if len(w.movies) >= w.capacity {
		evicted = w.movies[0]
		w.movies = slices.Delete(w.movies, 0, 1)
		delete(w.connections, evicted.Title())
		delete(w.players, evicted.Title())
	}
	w.movies = append(w.movies, m)
	w.connections[m.Title()] = connections
	w.players[m.Title()] = p
	return evicted
}

// Tail returns the most recently accepted movie, or nil when empty.
func (w *Window) Tail() *movie.Movie {
	if len(w.movies) == 0 {
		return nil
	}
	return w.movies[len(w.movies)-1]
}

// Movies returns the window from oldest to newest.
func (w *Window) Movies() []*movie.Movie { return slices.Clone(w.movies) }

// Len returns the number of movies in the window.
func (w *Window) Len() int { return len(w.movies) }

// Contains reports whether title is in the window.
func (w *Window) Contains(title string) bool {
	_, ok := w.players[title]
	return ok
}

// Connections returns the contributors credited for title. ok is false
// when title is not in the window; the seed has ok true and nil names.
func (w *Window) Connections(title string) (names []string, ok bool) {
	names, ok = w.connections[title]
	return slices.Clone(names), ok
}

// Player returns who played title; nil for the seed.
func (w *Window) Player(title string) (p *Player, ok bool) {
	p, ok = w.players[title]
	return p, ok
}
