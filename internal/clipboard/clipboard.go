// Package clipboard copies a finished chain to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/game"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("clipboard not available")

// Write copies text to the system clipboard.
func Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return !clipboard.Unsupported
}

// FormatChain renders the chain of a game as plain text, one movie per
// line with the contributors that linked it to the previous one.
func FormatChain(s game.Snapshot) string {
	var b strings.Builder
	for i, link := range s.Chain {
		fmt.Fprintf(&b, "%d. %s", i+1, link.Title)
		if link.Player != "" {
			fmt.Fprintf(&b, " [%s]", link.Player)
		}
		if len(link.Connections) > 0 {
			fmt.Fprintf(&b, " via %s", strings.Join(link.Connections, ", "))
		}
		b.WriteByte('\n')
	}
	if s.Winner >= 0 {
		fmt.Fprintf(&b, "Winner: %s (%s)\n", s.Players[s.Winner].Name, s.Cause)
	}
	for _, p := range s.Players {
		fmt.Fprintf(&b, "%s: %d\n", p.Name, p.Score)
	}
	return b.String()
}
