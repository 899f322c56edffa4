// Package catalog holds the read-only set of movies a game is played over,
// along with loaders for the supported dataset formats.
package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/movie"
)

// ErrNotFound is returned when a title does not resolve to a movie.
var ErrNotFound = errors.New("movie not found")

// Catalog maps unique titles to movies. It is filled during loading and
// only read afterwards.
type Catalog struct {
	movies map[string]*movie.Movie
	titles []string // sorted
}

// New creates a catalog holding the given movies.
func New(movies ...*movie.Movie) *Catalog {
	c := &Catalog{movies: make(map[string]*movie.Movie, len(movies))}
	for _, m := range movies {
		c.Add(m)
	}
	return c
}

// Add inserts m, replacing any movie with the same title.
func (c *Catalog) Add(m *movie.Movie) {
	title := m.Title()
	if _, exists := c.movies[title]; !exists {
		i, _ := slices.BinarySearch(c.titles, title)
		c.titles = slices.Insert(c.titles, i, title)
	}
	c.movies[title] = m
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// ByTitle resolves name to a movie. It tries the exact title, then a
// case-insensitive match, then a case-insensitive match ignoring the year
// suffix ("titanic" finds "Titanic (1997)").
func (c *Catalog) ByTitle(name string) (*movie.Movie, error) {
	if m, ok := c.movies[name]; ok {
		return m, nil
	}

	name = strings.TrimSpace(name)
	lower := strings.ToLower(name)
	for _, title := range c.titles {
		if strings.ToLower(title) == lower {
			return c.movies[title], nil
		}
	}
	if lower != "" {
		for _, title := range c.titles {
			if strings.HasPrefix(strings.ToLower(title), lower+" (") {
				return c.movies[title], nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// AllTitles returns every title in sorted order.
func (c *Catalog) AllTitles() []string {
	return slices.Clone(c.titles)
}

// Movies returns every movie ordered by title.
func (c *Catalog) Movies() []*movie.Movie {
	out := make([]*movie.Movie, len(c.titles))
	for i, title := range c.titles {
		out[i] = c.movies[title]
	}
	return out
}

// Genres returns the distinct genres across the catalog, sorted.
func (c *Catalog) Genres() []string {
	seen := make(map[string]struct{})
	for _, m := range c.movies {
		for _, g := range m.Genres() {
			seen[g] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for g := range seen {
		out = append(out, g)
	}
	slices.Sort(out)
	return out
}

// Random picks a movie using r, or nil when the catalog is empty.
func (c *Catalog) Random(r *rand.Rand) *movie.Movie {
	if len(c.titles) == 0 {
		return nil
	}
	return c.movies[c.titles[r.IntN(len(c.titles))]]
}

// FormatTitle appends the year suffix used to keep titles unique, unless
// title already carries it.
func FormatTitle(title string, year int) string {
	title = strings.TrimSpace(title)
	suffix := fmt.Sprintf(" (%d)", year)
	if strings.HasSuffix(title, suffix) {
		return title
	}
	return title + suffix
}
