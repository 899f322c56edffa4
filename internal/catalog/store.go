package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/movie"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS movies (
	title TEXT PRIMARY KEY,
	year  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS genres (
	title TEXT NOT NULL REFERENCES movies(title),
	genre TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS credits (
	title TEXT NOT NULL REFERENCES movies(title),
	role  TEXT NOT NULL,
	name  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS credits_title ON credits(title);
CREATE INDEX IF NOT EXISTS genres_title ON genres(title);
`

// SaveSQLite writes cat to a SQLite database at path, replacing any
// catalog already stored there.
func SaveSQLite(ctx context.Context, path string, cat *Catalog) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"credits", "genres", "movies"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	insertMovie, err := tx.PrepareContext(ctx, "INSERT INTO movies (title, year) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("preparing movie insert: %w", err)
	}
	defer insertMovie.Close()

	insertGenre, err := tx.PrepareContext(ctx, "INSERT INTO genres (title, genre) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("preparing genre insert: %w", err)
	}
	defer insertGenre.Close()

	insertCredit, err := tx.PrepareContext(ctx, "INSERT INTO credits (title, role, name) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing credit insert: %w", err)
	}
	defer insertCredit.Close()

	for _, m := range cat.Movies() {
		if _, err := insertMovie.ExecContext(ctx, m.Title(), m.Year()); err != nil {
			return fmt.Errorf("inserting movie %q: %w", m.Title(), err)
		}
		for _, g := range m.Genres() {
			if _, err := insertGenre.ExecContext(ctx, m.Title(), g); err != nil {
				return fmt.Errorf("inserting genre for %q: %w", m.Title(), err)
			}
		}
		for _, role := range movie.Roles {
			for _, name := range m.People(role) {
				if _, err := insertCredit.ExecContext(ctx, m.Title(), string(role), name); err != nil {
					return fmt.Errorf("inserting credit for %q: %w", m.Title(), err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog: %w", err)
	}
	return nil
}

// draft accumulates one movie's rows before it is built.
type draft struct {
	year    int
	genres  []string
	credits movie.Credits
}

// LoadSQLite reads a catalog written by SaveSQLite. A missing file is an
// error; it is never created.
func LoadSQLite(ctx context.Context, path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	drafts := make(map[string]*draft)

	rows, err := db.QueryContext(ctx, "SELECT title, year FROM movies")
	if err != nil {
		return nil, fmt.Errorf("querying movies: %w", err)
	}
	for rows.Next() {
		var title string
		var year int
		if err := rows.Scan(&title, &year); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning movie: %w", err)
		}
		drafts[title] = &draft{year: year}
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = db.QueryContext(ctx, "SELECT title, genre FROM genres")
	if err != nil {
		return nil, fmt.Errorf("querying genres: %w", err)
	}
	for rows.Next() {
		var title, genre string
		if err := rows.Scan(&title, &genre); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning genre: %w", err)
		}
		if d, ok := drafts[title]; ok {
			d.genres = append(d.genres, genre)
		}
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = db.QueryContext(ctx, "SELECT title, role, name FROM credits")
	if err != nil {
		return nil, fmt.Errorf("querying credits: %w", err)
	}
	for rows.Next() {
		var title, role, name string
		if err := rows.Scan(&title, &role, &name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning credit: %w", err)
		}
		r, ok := movie.ParseRole(role)
		if !ok {
			continue
		}
		if d, ok := drafts[title]; ok {
			d.credits.Add(r, name)
		}
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	cat := New()
	for title, d := range drafts {
		cat.Add(movie.New(title, d.year, d.genres, d.credits))
	}
	return cat, nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("reading rows: %w", err)
	}
	return rows.Close()
}
