package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/movie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Catalog {
	return New(
		movie.New("Titanic (1997)", 1997, []string{"Drama", "Romance"}, movie.Credits{Actors: []string{"Leo DiCaprio"}}),
		movie.New("Titanic (1953)", 1953, []string{"Drama"}, movie.Credits{Actors: []string{"Barbara Stanwyck"}}),
		movie.New("Titans (2000)", 2000, []string{"Action"}, movie.Credits{}),
	)
}

func TestByTitle(t *testing.T) {
	cat := sample()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"exact", "Titanic (1997)", "Titanic (1997)"},
		{"case-insensitive", "titanic (1997)", "Titanic (1997)"},
		{"without year picks first sorted", "TITANIC", "Titanic (1953)"},
		{"surrounding space", "  Titans (2000) ", "Titans (2000)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := cat.ByTitle(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Title())
		})
	}
}

func TestByTitle_NotFound(t *testing.T) {
	cat := sample()

	for _, q := range []string{"Avatar", "", "Titan"} {
		_, err := cat.ByTitle(q)
		assert.ErrorIs(t, err, ErrNotFound, "query %q", q)
	}
}

func TestAllTitles_SortedCopy(t *testing.T) {
	cat := sample()

	titles := cat.AllTitles()
	assert.Equal(t, []string{"Titanic (1953)", "Titanic (1997)", "Titans (2000)"}, titles)

	titles[0] = "mutated"
	assert.Equal(t, "Titanic (1953)", cat.AllTitles()[0])
}

func TestAdd_ReplacesSameTitle(t *testing.T) {
	cat := sample()
	cat.Add(movie.New("Titans (2000)", 2000, []string{"Drama"}, movie.Credits{}))

	assert.Equal(t, 3, cat.Len())
	m, err := cat.ByTitle("Titans (2000)")
	require.NoError(t, err)
	assert.Equal(t, []string{"Drama"}, m.Genres())
}

func TestGenres(t *testing.T) {
	assert.Equal(t, []string{"Action", "Drama", "Romance"}, sample().Genres())
}

func TestRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	assert.Nil(t, New().Random(r))
	m := sample().Random(r)
	require.NotNil(t, m)
	assert.Contains(t, sample().AllTitles(), m.Title())
}

func TestFormatTitle(t *testing.T) {
	assert.Equal(t, "Up (2009)", FormatTitle("Up", 2009))
	assert.Equal(t, "Up (2009)", FormatTitle(" Up (2009) ", 2009))
}
