package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const datasetCSV = `title,people,genres,release_date
Titanic,"actor: Leonardo DiCaprio, actor: Kate Winslet, director: James Cameron, writer: James Cameron, composer: James Horner, cinematographer: Russell Carpenter","{'genres: Drama', 'genres: Romance'}",1997-11-18
The Revenant,"actor: Leonardo DiCaprio, actor: Tom Hardy, director: Alejandro G. Iñárritu","{'genres: Western'}",2015-12-25
Broken Row,"actor: Someone"
,"actor: Nobody","{'genres: Drama'}",2000-01-01
Unknown Date,"producer: Skip Me, actor: Kept, Jr.","{}",
`

func TestLoadCSV(t *testing.T) {
	cat, err := LoadCSV(strings.NewReader(datasetCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"The Revenant (2015)", "Titanic (1997)", "Unknown Date (0)"}, cat.AllTitles())

	titanic, err := cat.ByTitle("Titanic (1997)")
	require.NoError(t, err)
	assert.Equal(t, 1997, titanic.Year())
	assert.Equal(t, []string{"Drama", "Romance"}, titanic.Genres())
	assert.Equal(t, []string{"Kate Winslet", "Leonardo DiCaprio"}, titanic.People("actor"))
	assert.Equal(t, []string{"James Cameron"}, titanic.People("director"))
	assert.Equal(t, []string{"James Horner"}, titanic.People("composer"))
	assert.Equal(t, []string{"Russell Carpenter"}, titanic.People("cinematographer"))

	revenant, err := cat.ByTitle("the revenant")
	require.NoError(t, err)
	assert.Equal(t, []string{"Leonardo DiCaprio"}, titanic.SharedPeople(revenant))
}

func TestLoadCSV_UnknownRoleAndCommaInName(t *testing.T) {
	cat, err := LoadCSV(strings.NewReader(datasetCSV))
	require.NoError(t, err)

	m, err := cat.ByTitle("Unknown Date (0)")
	require.NoError(t, err)
	assert.Equal(t, []string{"Kept, Jr."}, m.AllPeople())
	assert.Empty(t, m.Genres())
}

func TestLoadCSV_Empty(t *testing.T) {
	cat, err := LoadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())
}

func TestParseYear(t *testing.T) {
	assert.Equal(t, 1997, parseYear("1997-11-18"))
	assert.Equal(t, 0, parseYear("97"))
	assert.Equal(t, 0, parseYear("abcd-01-01"))
}
