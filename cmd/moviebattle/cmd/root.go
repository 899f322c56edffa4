// Package cmd contains all CLI commands for moviebattle.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/autocomplete"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/catalog"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/clock"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/config"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/game"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/logging"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/tui"
)

var errNoTerminal = errors.New("moviebattle needs an interactive terminal (try 'moviebattle suggest')")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "moviebattle",
	Short: "Movie Battle - a two-player movie connection game",
	Long: `Movie Battle is a two-player terminal game. Players take turns naming
movies; every movie must share an actor, director, writer,
cinematographer or composer with the previous one.

Rules:
  - A player may use the same contributor as a link at most 3 times
  - Movies cannot be repeated
  - Running out of time loses the game
  - With a genre selected, the first player to 5 movies of it wins

Running 'moviebattle' without arguments starts a game.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	fs := rootCmd.PersistentFlags()
	fs.String("config", "", "config file (default is $HOME/.config/moviebattle/config.yaml) (env: MOVIEBATTLE_CONFIG)")
	fs.Bool("verbose", false, "debug logging (env: MOVIEBATTLE_VERBOSE)")
	fs.String("catalog", "", "movie catalog: .csv, .jsonl or .db (env: MOVIEBATTLE_CATALOG)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})
}

// initConfig reads ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("MOVIEBATTLE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// configFile returns the path of the settings file.
func configFile() (string, error) {
	if path := viper.GetString("config"); path != "" {
		return path, nil
	}
	dir, err := config.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding config directory: %w", err)
	}
	return filepath.Join(dir, config.FileName), nil
}

// loadSettings reads the config file, falling back to defaults when it
// does not exist, and applies flag overrides.
func loadSettings() (*config.Config, error) {
	path, err := configFile()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if c := viper.GetString("catalog"); c != "" {
		cfg.Catalog = c
	}
	return cfg, nil
}

// openCatalog loads cfg.Catalog. Relative paths are tried against the
// working directory first, then the config directory.
func openCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	path := cfg.Catalog
	if path == "" {
		return nil, errors.New("no catalog configured (use --catalog)")
	}
	if !filepath.IsAbs(path) {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if dir, err := config.GetConfigDir(); err == nil {
				candidate := filepath.Join(dir, path)
				if _, err := os.Stat(candidate); err == nil {
					path = candidate
				}
			}
		}
	}
	cat, err := catalog.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

func logDir(cfg *config.Config) string {
	if cfg.LogDir != "" {
		return cfg.LogDir
	}
	dir, err := config.GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "logs")
}

// runPlay launches the game TUI.
func runPlay(cmd *cobra.Command, args []string) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errNoTerminal
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Verbose: viper.GetBool("verbose"),
		LogDir:  logDir(cfg),
		Quiet:   true,
	})
	defer logger.Close()

	cat, err := openCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	index := autocomplete.Build(cat.AllTitles())
	logger.Slog().Info("catalog loaded",
		"path", cfg.Catalog,
		"movies", cat.Len(),
		"indexed", index.Len())

	engine := game.NewEngine(cat, cfg.GameRules(), game.WithLogger(logger.Slog()))
	defer engine.Close()

	p := tea.NewProgram(
		tui.NewApp(tui.Deps{
			Engine:  engine,
			Index:   index,
			Catalog: cat,
			Clock:   clock.New(cfg.ClockSettings()),
			Config:  cfg,
			Logger:  logger.Slog(),
		}),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
