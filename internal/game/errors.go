package game

import "errors"

var (
	// ErrNotInProgress is returned for guesses outside a running game.
	ErrNotInProgress = errors.New("game not in progress")
	// ErrNamesRequired is returned when starting without both usernames.
	ErrNamesRequired = errors.New("both player names are required")
	// ErrNamesLocked is returned when renaming after the game started.
	ErrNamesLocked = errors.New("player names can only change before the game starts")
	ErrInvalidPlayer = errors.New("invalid player index")
	ErrNoSeed        = errors.New("seed movie is required")
)
