// Package config handles loading and saving the game settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/clock"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/game"
)

// FileName is the settings file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration for a game.
type Config struct {
	Rules           RulesConfig  `yaml:"rules"`
	Timing          TimingConfig `yaml:"timing"`
	Genres          []string     `yaml:"genres"`
	SuggestionLimit int          `yaml:"suggestion_limit"`
	SeedTitle       string       `yaml:"seed_title"`   // empty picks a random movie
	FirstPlayer     string       `yaml:"first_player"` // "1", "2" or "random"
	Catalog         string       `yaml:"catalog"`      // .csv, .jsonl or .db path
	LogDir          string       `yaml:"log_dir"`
}

// RulesConfig holds the chain limits.
type RulesConfig struct {
	UsageCap    int `yaml:"usage_cap"`
	WindowSize  int `yaml:"window_size"`
	GenreTarget int `yaml:"genre_target"`
}

// TimingConfig holds the turn clock settings, in seconds.
type TimingConfig struct {
	TurnSeconds      int `yaml:"turn_seconds"`
	SabotagedSeconds int `yaml:"sabotaged_seconds"`
	BoostSeconds     int `yaml:"boost_seconds"`
	Boosts           int `yaml:"boosts"`
	Sabotages        int `yaml:"sabotages"`
}

// Default returns the standard game settings.
func Default() *Config {
	r := game.DefaultRules()
	t := clock.DefaultSettings()
	return &Config{
		Rules: RulesConfig{
			UsageCap:    r.UsageCap,
			WindowSize:  r.WindowSize,
			GenreTarget: r.GenreTarget,
		},
		Timing: TimingConfig{
			TurnSeconds:      t.TurnSeconds,
			SabotagedSeconds: t.SabotagedSeconds,
			BoostSeconds:     t.BoostSeconds,
			Boosts:           t.Boosts,
			Sabotages:        t.Sabotages,
		},
		Genres: []string{
			"Action", "Adventure", "Animation", "Comedy",
			"Crime", "Drama", "Family", "Fantasy",
			"Horror", "Romance", "Sci-Fi", "Thriller",
		},
		SuggestionLimit: 5,
		SeedTitle:       "Titanic (1997)",
		FirstPlayer:     "1",
		Catalog:         "tmdb_5000_movies.csv",
	}
}

// GameRules converts the rules section for the engine.
func (c *Config) GameRules() game.Rules {
	return game.Rules{
		UsageCap:    c.Rules.UsageCap,
		WindowSize:  c.Rules.WindowSize,
		GenreTarget: c.Rules.GenreTarget,
	}
}

// ClockSettings converts the timing section for the turn clock.
func (c *Config) ClockSettings() clock.Settings {
	return clock.Settings{
		TurnSeconds:      c.Timing.TurnSeconds,
		SabotagedSeconds: c.Timing.SabotagedSeconds,
		BoostSeconds:     c.Timing.BoostSeconds,
		Boosts:           c.Timing.Boosts,
		Sabotages:        c.Timing.Sabotages,
	}
}

// FirstPlayerIndex maps FirstPlayer to a seat index or game.RandomFirst.
func (c *Config) FirstPlayerIndex() int {
	switch c.FirstPlayer {
	case "2":
		return 1
	case "random":
		return game.RandomFirst
	default:
		return 0
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive("rules.usage_cap", c.Rules.UsageCap)
	positive("rules.window_size", c.Rules.WindowSize)
	positive("rules.genre_target", c.Rules.GenreTarget)
	positive("timing.turn_seconds", c.Timing.TurnSeconds)
	positive("timing.sabotaged_seconds", c.Timing.SabotagedSeconds)
	positive("suggestion_limit", c.SuggestionLimit)
	if c.Timing.BoostSeconds < 0 || c.Timing.Boosts < 0 || c.Timing.Sabotages < 0 {
		errs = append(errs, errors.New("timing power-ups cannot be negative"))
	}
	if c.Timing.SabotagedSeconds > c.Timing.TurnSeconds {
		errs = append(errs, fmt.Errorf("timing.sabotaged_seconds (%d) exceeds timing.turn_seconds (%d)",
			c.Timing.SabotagedSeconds, c.Timing.TurnSeconds))
	}
	switch c.FirstPlayer {
	case "1", "2", "random":
	default:
		errs = append(errs, fmt.Errorf("first_player must be 1, 2 or random, got %q", c.FirstPlayer))
	}
	return errors.Join(errs...)
}

// Load reads a config file. Missing keys keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault reads path if it exists and returns Default otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the config to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "moviebattle"), nil
}
