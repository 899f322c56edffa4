package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/movie"
)

// Record is one movie in the JSONL catalog format.
type Record struct {
	Title  string   `json:"title"`
	Year   int      `json:"year"`
	Genres []string `json:"genres,omitempty"`
	movie.Credits
}

// ToMovie converts the record, appending the year to the title.
func (r Record) ToMovie() *movie.Movie {
	return movie.New(FormatTitle(r.Title, r.Year), r.Year, r.Genres, r.Credits)
}

// LoadJSONLFile loads a catalog from a JSONL file.
func LoadJSONLFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer file.Close()

	return LoadJSONL(file)
}

// LoadJSONL reads one Record per line.
func LoadJSONL(r io.Reader) (*Catalog, error) {
	cat := New()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			// Skip malformed entries
			continue
		}
		if rec.Title == "" {
			continue
		}

		cat.Add(rec.ToMovie())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	return cat, nil
}
