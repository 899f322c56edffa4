package game

import (
	"testing"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/movie"
	"github.com/stretchr/testify/assert"
)

func TestPlayerLedger(t *testing.T) {
	p := NewPlayer("A")

	p.RecordUsage("Leo DiCaprio", "Kate Winslet")
	p.RecordUsage("Leo DiCaprio")
	assert.Equal(t, 2, p.UsageOf("Leo DiCaprio"))
	assert.Equal(t, 1, p.UsageOf("Kate Winslet"))
	assert.Equal(t, 0, p.UsageOf("Tom Hardy"))

	p.SetUsage("Tom Hardy", 3)
	assert.Equal(t, 3, p.UsageOf("Tom Hardy"))
	p.SetUsage("Tom Hardy", 0)
	assert.NotContains(t, p.Usage(), "Tom Hardy")

	usage := p.Usage()
	usage["Leo DiCaprio"] = 99
	assert.Equal(t, 2, p.UsageOf("Leo DiCaprio"))
}

func TestPlayerGuesses(t *testing.T) {
	p := NewPlayer("A")
	drama := movie.New("B (2001)", 2001, []string{"Drama"}, movie.Credits{})
	comedy := movie.New("A (2000)", 2000, []string{"Comedy", "Drama"}, movie.Credits{})
	horror := movie.New("C (2002)", 2002, []string{"Horror"}, movie.Credits{})

	p.RecordCorrect(drama)
	p.RecordCorrect(comedy)
	p.RecordCorrect(drama)
	p.RecordIncorrect(horror)
	p.IncrementScore()
	p.IncrementScore()

	assert.Equal(t, []string{"A (2000)", "B (2001)"}, p.CorrectGuesses())
	assert.Equal(t, []string{"C (2002)"}, p.IncorrectGuesses())
	assert.Equal(t, 2, p.GenreCount("Drama"))
	assert.Equal(t, 1, p.GenreCount("comedy"))
	assert.Equal(t, 0, p.GenreCount("Horror"))
	assert.Equal(t, 2, p.Score())
}

func TestPlayerReset_KeepsUsername(t *testing.T) {
	p := NewPlayer("A")
	p.RecordUsage("Leo DiCaprio")
	p.IncrementScore()
	p.RecordCorrect(movie.New("X (2000)", 2000, nil, movie.Credits{}))

	p.Reset()

	assert.Equal(t, "A", p.Username())
	assert.Equal(t, 0, p.Score())
	assert.Equal(t, 0, p.UsageOf("Leo DiCaprio"))
	assert.Empty(t, p.CorrectGuesses())
	assert.Empty(t, p.IncorrectGuesses())
}
