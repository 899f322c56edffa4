package movie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func titanic() *Movie {
	return New("Titanic (1997)", 1997,
		[]string{"Drama", "Family", "Adventure"},
		Credits{
			Directors:        []string{"James Cameron"},
			Actors:           []string{"Leo DiCaprio", "Kate Winslet"},
			Writers:          []string{"James Cameron"},
			Cinematographers: []string{"Russell Carpenter", "John M. Stephens"},
			Composers:        []string{"James Horner"},
		})
}

func TestNew_AllPeopleIsUnionOfRoles(t *testing.T) {
	m := titanic()

	assert.Equal(t, []string{
		"James Cameron", "James Horner", "John M. Stephens",
		"Kate Winslet", "Leo DiCaprio", "Russell Carpenter",
	}, m.AllPeople())
	assert.True(t, m.HasPerson("James Cameron"))
	assert.False(t, m.HasPerson("Hans Zimmer"))
}

func TestNew_SkipsBlankNames(t *testing.T) {
	m := New("Blank (2000)", 2000, []string{" ", "Drama"}, Credits{Actors: []string{"", "  ", "Someone"}})

	assert.Equal(t, []string{"Someone"}, m.AllPeople())
	assert.Equal(t, []string{"Drama"}, m.Genres())
}

func TestAllPeople_ReturnsCopy(t *testing.T) {
	m := titanic()
	people := m.AllPeople()
	people[0] = "mutated"

	assert.NotContains(t, m.AllPeople(), "mutated")
}

func TestSharedPeople(t *testing.T) {
	m := titanic()
	other := New("The Revenant (2015)", 2015, nil, Credits{
		Actors:    []string{"Leo DiCaprio", "Tom Hardy"},
		Composers: []string{"Ryuichi Sakamoto"},
	})
	none := New("Up (2009)", 2009, nil, Credits{Directors: []string{"Pete Docter"}})

	assert.Equal(t, []string{"Leo DiCaprio"}, m.SharedPeople(other))
	assert.Equal(t, []string{"Leo DiCaprio"}, other.SharedPeople(m))
	assert.Empty(t, m.SharedPeople(none))
}

func TestRolesOf(t *testing.T) {
	m := titanic()

	assert.Equal(t, []Role{RoleDirector, RoleWriter}, m.RolesOf("James Cameron"))
	assert.Nil(t, m.RolesOf("Nobody"))
}

func TestHasGenre_CaseInsensitive(t *testing.T) {
	m := titanic()

	assert.True(t, m.HasGenre("drama"))
	assert.False(t, m.HasGenre("Horror"))
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" Composer ")
	assert.True(t, ok)
	assert.Equal(t, RoleComposer, r)

	_, ok = ParseRole("producer")
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Titanic (1997), 1997, [Adventure, Drama, Family]", titanic().String())
}
