// Package movie provides the core movie record shared by the catalog and the game.
package movie

import (
	"fmt"
	"sort"
	"strings"
)

// Role is one of the five contributor categories that can connect two movies.
type Role string

const (
	RoleDirector        Role = "director"
	RoleActor           Role = "actor"
	RoleWriter          Role = "writer"
	RoleCinematographer Role = "cinematographer"
	RoleComposer        Role = "composer"
)

// Roles lists every contributor role in display order.
var Roles = []Role{RoleDirector, RoleActor, RoleWriter, RoleCinematographer, RoleComposer}

// ParseRole maps a dataset job label (e.g. "Actor", " composer ") to a Role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Roles {
		if r == known {
			return r, true
		}
	}
	return "", false
}

type set map[string]struct{}

func newSet(values []string) set {
	s := make(set, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		s[v] = struct{}{}
	}
	return s
}

func (s set) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Credits holds the raw contributor lists for a movie, keyed by role.
type Credits struct {
	Directors        []string `yaml:"directors,omitempty" json:"directors,omitempty"`
	Actors           []string `yaml:"actors,omitempty" json:"actors,omitempty"`
	Writers          []string `yaml:"writers,omitempty" json:"writers,omitempty"`
	Cinematographers []string `yaml:"cinematographers,omitempty" json:"cinematographers,omitempty"`
	Composers        []string `yaml:"composers,omitempty" json:"composers,omitempty"`
}

// Add appends name under role.
func (c *Credits) Add(role Role, name string) {
	switch role {
	case RoleDirector:
		c.Directors = append(c.Directors, name)
	case RoleActor:
		c.Actors = append(c.Actors, name)
	case RoleWriter:
		c.Writers = append(c.Writers, name)
	case RoleCinematographer:
		c.Cinematographers = append(c.Cinematographers, name)
	case RoleComposer:
		c.Composers = append(c.Composers, name)
	}
}

// Movie is an immutable catalog entry. The title is the unique key and
// carries the release year, e.g. "Titanic (1997)".
type Movie struct {
	title  string
	year   int
	genres set
	roles  map[Role]set
	people set // union of all roles, built once in New
}

// New builds a Movie and caches the union of its contributors.
func New(title string, year int, genres []string, credits Credits) *Movie {
	m := &Movie{
		title:  title,
		year:   year,
		genres: newSet(genres),
		roles: map[Role]set{
			RoleDirector:        newSet(credits.Directors),
			RoleActor:           newSet(credits.Actors),
			RoleWriter:          newSet(credits.Writers),
			RoleCinematographer: newSet(credits.Cinematographers),
			RoleComposer:        newSet(credits.Composers),
		},
		people: make(set),
	}
	for _, names := range m.roles {
		for name := range names {
			m.people[name] = struct{}{}
		}
	}
	return m
}

// Title returns the unique title, including the year suffix.
func (m *Movie) Title() string { return m.title }

// Year returns the release year (0 when unknown).
func (m *Movie) Year() int { return m.year }

// Genres returns the movie's genres, sorted.
func (m *Movie) Genres() []string { return m.genres.sorted() }

// HasGenre reports whether the movie is tagged with genre (case-insensitive).
func (m *Movie) HasGenre(genre string) bool {
	for g := range m.genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

// People returns the contributors credited under role, sorted.
func (m *Movie) People(role Role) []string { return m.roles[role].sorted() }

// Credits returns a copy of the movie's contributors grouped by role.
func (m *Movie) Credits() Credits {
	return Credits{
		Directors:        m.People(RoleDirector),
		Actors:           m.People(RoleActor),
		Writers:          m.People(RoleWriter),
		Cinematographers: m.People(RoleCinematographer),
		Composers:        m.People(RoleComposer),
	}
}

// AllPeople returns every contributor across the five roles, sorted.
func (m *Movie) AllPeople() []string { return m.people.sorted() }

// HasPerson reports whether name is credited in any role.
func (m *Movie) HasPerson(name string) bool {
	_, ok := m.people[name]
	return ok
}

// SharedPeople returns the contributors credited on both movies, sorted.
func (m *Movie) SharedPeople(other *Movie) []string {
	small, large := m.people, other.people
	if len(large) < len(small) {
		small, large = large, small
	}
	shared := make(set)
	for name := range small {
		if _, ok := large[name]; ok {
			shared[name] = struct{}{}
		}
	}
	return shared.sorted()
}

// RolesOf returns the roles under which name is credited on this movie.
func (m *Movie) RolesOf(name string) []Role {
	var out []Role
	for _, r := range Roles {
		if _, ok := m.roles[r][name]; ok {
			out = append(out, r)
		}
	}
	return out
}

// String returns "title, year, [genres]".
func (m *Movie) String() string {
	return fmt.Sprintf("%s, %d, [%s]", m.title, m.year, strings.Join(m.Genres(), ", "))
}
