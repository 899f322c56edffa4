package game

import (
	"maps"
	"slices"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/movie"
)

// Player tracks one participant's score and connection ledger.
//
// A Player owned by an Engine is guarded by the engine's lock; read it
// through Engine.Snapshot while a game is running.
type Player struct {
	username  string
	score     int
	usage     map[string]int // contributor -> times credited to this player
	correct   map[string]*movie.Movie
	incorrect map[string]*movie.Movie
}

// NewPlayer creates a player with an empty ledger.
func NewPlayer(username string) *Player {
	return &Player{
		username:  username,
		usage:     make(map[string]int),
		correct:   make(map[string]*movie.Movie),
		incorrect: make(map[string]*movie.Movie),
	}
}

// Username returns the player's name.
func (p *Player) Username() string { return p.username }

// Score returns the number of accepted guesses.
func (p *Player) Score() int { return p.score }

// IncrementScore adds one point.
func (p *Player) IncrementScore() { p.score++ }

// UsageOf returns how many times name has been credited to this player.
func (p *Player) UsageOf(name string) int { return p.usage[name] }

// SetUsage overrides the count for name.
func (p *Player) SetUsage(name string, count int) {
	if count <= 0 {
		delete(p.usage, name)
		return
	}
	p.usage[name] = count
}

// RecordUsage credits each name once more.
func (p *Player) RecordUsage(names ...string) {
	for _, name := range names {
		p.usage[name]++
	}
}

// Usage returns a copy of the contributor ledger.
func (p *Player) Usage() map[string]int { return maps.Clone(p.usage) }

// RecordCorrect remembers m as accepted for this player.
func (p *Player) RecordCorrect(m *movie.Movie) { p.correct[m.Title()] = m }

// RecordIncorrect remembers m as rejected for this player.
func (p *Player) RecordIncorrect(m *movie.Movie) { p.incorrect[m.Title()] = m }

// CorrectGuesses returns the titles this player got accepted, sorted.
func (p *Player) CorrectGuesses() []string { return sortedKeys(p.correct) }

// IncorrectGuesses returns the titles this player had rejected, sorted.
func (p *Player) IncorrectGuesses() []string { return sortedKeys(p.incorrect) }

// GenreCount returns how many accepted movies carry genre.
func (p *Player) GenreCount(genre string) int {
	n := 0
	for _, m := range p.correct {
		if m.HasGenre(genre) {
			n++
		}
	}
	return n
}

// Reset clears score, ledger and guesses. The username is kept.
func (p *Player) Reset() {
	p.score = 0
	clear(p.usage)
	clear(p.correct)
	clear(p.incorrect)
}

func sortedKeys(m map[string]*movie.Movie) []string {
	return slices.Sorted(maps.Keys(m))
}
