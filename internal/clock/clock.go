// Package clock runs the per-turn countdown and the two power-ups players
// can spend on it: a time boost for the current turn and a sabotage that
// shortens the opponent's next turn.
package clock

import "sync"

// Settings are the countdown lengths and power-up allowances, in seconds
// and uses per game.
type Settings struct {
	TurnSeconds      int
	SabotagedSeconds int
	BoostSeconds     int
	Boosts           int
	Sabotages        int
}

// DefaultSettings returns 30 s turns, 20 s sabotaged turns, two 15 s boosts
// and one sabotage per player.
func DefaultSettings() Settings {
	return Settings{
		TurnSeconds:      30,
		SabotagedSeconds: 20,
		BoostSeconds:     15,
		Boosts:           2,
		Sabotages:        1,
	}
}

// Clock counts down the active player's turn. It is safe for concurrent use.
type Clock struct {
	mu sync.Mutex

	settings  Settings
	turn      int
	player    int
	remaining int
	running   bool
	started   bool // a turn has started since the last Reset

	boosts    [2]int
	sabotages [2]int
	pending   [2]bool // next turn of that player is sabotaged
}

// New creates a stopped clock with full power-up allowances.
func New(s Settings) *Clock {
	c := &Clock{settings: s}
	c.resetLocked()
	return c
}

// Reset stops the clock and restores every allowance.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

func (c *Clock) resetLocked() {
	c.turn = 0
	c.player = 0
	c.remaining = 0
	c.running = false
	c.started = false
	c.boosts = [2]int{c.settings.Boosts, c.settings.Boosts}
	c.sabotages = [2]int{c.settings.Sabotages, c.settings.Sabotages}
	c.pending = [2]bool{}
}

// StartTurn starts the countdown for player on turn. A pending sabotage
// against player is consumed here. A turn that was already started, or an
// earlier one, is ignored and StartTurn returns false.
func (c *Clock) StartTurn(turn, player int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started && turn <= c.turn {
		return false
	}
	c.started = true
	c.turn = turn
	c.player = player
	c.remaining = c.settings.TurnSeconds
	if c.pending[player] {
		c.remaining = c.settings.SabotagedSeconds
		c.pending[player] = false
	}
	c.running = true
	return true
}

// Tick removes one second. expired is true on the tick that reaches zero;
// later ticks are no-ops until the next StartTurn.
func (c *Clock) Tick() (remaining int, expired bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return c.remaining, false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		return 0, true
	}
	return c.remaining, false
}

// Stop freezes the countdown.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
}

// Boost adds time to player's running turn. It fails when player is not on
// the clock or has no boosts left.
func (c *Clock) Boost(player int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || player != c.player || c.boosts[player] == 0 {
		return false
	}
	c.boosts[player]--
	c.remaining += c.settings.BoostSeconds
	return true
}

// Sabotage shortens the next turn of player's opponent. It can only be
// played during player's own turn, and only one sabotage may be pending.
func (c *Clock) Sabotage(player int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	opponent := 1 - player
	if !c.running || player != c.player || c.sabotages[player] == 0 || c.pending[opponent] {
		return false
	}
	c.sabotages[player]--
	c.pending[opponent] = true
	return true
}

// Remaining returns the seconds left in the current turn.
func (c *Clock) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Turn returns the turn token passed to the last StartTurn.
func (c *Clock) Turn() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.turn
}

func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Boosts returns how many boosts player has left.
func (c *Clock) Boosts(player int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.boosts[player]
}

// Sabotages returns how many sabotages player has left.
func (c *Clock) Sabotages(player int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sabotages[player]
}

// Sabotaged reports whether player's next turn is shortened.
func (c *Clock) Sabotaged(player int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[player]
}
