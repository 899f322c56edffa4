package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/movie"
)

// CSV columns of the movie dataset.
const (
	colTitle = iota
	colPeople
	colGenres
	colReleaseDate
	csvColumns
)

// LoadCSVFile loads a catalog from the movie dataset CSV at path.
func LoadCSVFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer file.Close()

	return LoadCSV(file)
}

// LoadCSV reads the movie dataset: a header row followed by
// title, people, genres, release_date.
//
// people is "actor: Name, director: Name, ..." and genres is
// "{'genres: Drama', 'genres: Family'}". The stored title gets the release
// year appended. Rows with too few columns or an empty title are skipped.
func LoadCSV(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cat := New()
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading catalog row: %w", err)
		}
		if len(row) < csvColumns {
			continue
		}

		title := strings.TrimSpace(row[colTitle])
		if title == "" {
			continue
		}

		year := parseYear(row[colReleaseDate])
		cat.Add(movie.New(
			FormatTitle(title, year),
			year,
			parseGenres(row[colGenres]),
			parsePeople(row[colPeople]),
		))
	}

	return cat, nil
}

// parseYear takes the leading four digits of a date such as "1997-12-19".
func parseYear(date string) int {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

// parsePeople splits "actor: A, director: B, ..." into credits. A segment
// that does not start with a known role continues the previous name, so
// names containing ", " survive.
func parsePeople(raw string) movie.Credits {
	var credits movie.Credits

	raw = strings.Trim(strings.TrimSpace(raw), `"`)
	var entries []string
	for _, part := range strings.Split(raw, ", ") {
		if hasRolePrefix(part) || len(entries) == 0 {
			entries = append(entries, part)
			continue
		}
		entries[len(entries)-1] += ", " + part
	}

	for _, entry := range entries {
		job, name, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		role, ok := movie.ParseRole(job)
		if !ok {
			continue
		}
		name = strings.TrimSpace(strings.Trim(strings.TrimSpace(name), `"`))
		if name != "" {
			credits.Add(role, name)
		}
	}

	return credits
}

func hasRolePrefix(s string) bool {
	job, _, ok := strings.Cut(s, ":")
	if !ok {
		return false
	}
	_, known := movie.ParseRole(job)
	return known
}

// parseGenres reads "{'genres: Drama', 'genres: Family'}".
func parseGenres(raw string) []string {
	raw = strings.Trim(strings.TrimSpace(raw), `"`)
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "{"), "}")

	var genres []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(strings.ReplaceAll(part, "'", ""))
		genre, ok := strings.CutPrefix(part, "genres:")
		if !ok {
			continue
		}
		genre = strings.TrimSpace(strings.Trim(strings.TrimSpace(genre), `"`))
		if genre != "" {
			genres = append(genres, genre)
		}
	}
	return genres
}
