package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/autocomplete"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <prefix>",
	Short: "Print title suggestions for a prefix",
	Long: `Print the ranked title suggestions the game would show for a prefix,
together with the number of indexed titles starting with it.

Example:
  moviebattle suggest titan
  moviebattle suggest "the dark" --limit 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggest,
}

var suggestLimit int

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 0, "maximum suggestions (default from config)")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	limit := suggestLimit
	if limit <= 0 {
		limit = cfg.SuggestionLimit
	}

	cat, err := openCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	index := autocomplete.Build(cat.AllTitles())

	prefix := strings.Join(args, " ")
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d titles match %q\n", index.CountPrefixes(prefix), prefix)
	for _, term := range index.Suggestions(prefix, limit) {
		fmt.Fprintln(out, term.String())
	}
	return nil
}
