package game

import (
	"fmt"
	"testing"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/movie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowPushEvicts(t *testing.T) {
	w := newWindow(3)
	seed := movie.New("Seed (1990)", 1990, nil, movie.Credits{})
	w.seed(seed)
	p := NewPlayer("A")

	var evicted []string
	for i := 1; i <= 4; i++ {
		m := movie.New(fmt.Sprintf("M%d (2000)", i), 2000, nil, movie.Credits{})
		if old := w.push(m, []string{"X"}, p); old != nil {
			evicted = append(evicted, old.Title())
		}
	}

	assert.Equal(t, []string{"Seed (1990)", "M1 (2000)"}, evicted)
	require.Equal(t, 3, w.Len())
	assert.Equal(t, "M4 (2000)", w.Tail().Title())
	for _, title := range evicted {
		assert.False(t, w.Contains(title))
		_, ok := w.Connections(title)
		assert.False(t, ok)
		_, ok = w.Player(title)
		assert.False(t, ok)
	}
	assert.Len(t, w.connections, 3)
	assert.Len(t, w.players, 3)
}

func TestWindowSeedResets(t *testing.T) {
	w := newWindow(5)
	w.seed(movie.New("One (2000)", 2000, nil, movie.Credits{}))
	w.push(movie.New("Two (2001)", 2001, nil, movie.Credits{}), []string{"X"}, NewPlayer("A"))

	w.seed(movie.New("Three (2002)", 2002, nil, movie.Credits{}))

	assert.Equal(t, 1, w.Len())
	assert.False(t, w.Contains("Two (2001)"))
	p, ok := w.Player("Three (2002)")
	assert.True(t, ok)
	assert.Nil(t, p)
}

func TestWindowEmptyTail(t *testing.T) {
	assert.Nil(t, newWindow(5).Tail())
}

func TestPhaseTransitions(t *testing.T) {
	assert.True(t, PhaseAwaitingNames.CanTransitionTo(PhaseInProgress))
	assert.True(t, PhaseSelectingGenre.CanTransitionTo(PhaseInProgress))
	assert.True(t, PhaseInProgress.CanTransitionTo(PhaseGameOver))
	assert.False(t, PhaseGameOver.CanTransitionTo(PhaseInProgress))
	assert.False(t, PhaseInProgress.CanTransitionTo(PhaseSelectingGenre))
}
