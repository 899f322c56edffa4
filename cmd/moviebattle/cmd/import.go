package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/catalog"
)

var importCmd = &cobra.Command{
	Use:   "import <dataset> <catalog.db>",
	Short: "Convert a CSV or JSONL dataset to a SQLite catalog",
	Long: `Read a movie dataset and write it as a SQLite catalog snapshot, which
loads faster than parsing the dataset on every start.

Supported inputs:
  .csv            title, people, genres, release_date
  .jsonl/.ndjson  one movie object per line
  .db             an existing snapshot

Example:
  moviebattle import tmdb_5000_movies.csv movies.db
  moviebattle --catalog movies.db`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	cat, err := catalog.Open(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}
	if err := catalog.SaveSQLite(cmd.Context(), out, cat); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d movies (%d genres) into %s\n", cat.Len(), len(cat.Genres()), out)
	return nil
}
