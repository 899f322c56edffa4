package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickExpires(t *testing.T) {
	c := New(Settings{TurnSeconds: 3})
	c.StartTurn(7, 0)

	r, expired := c.Tick()
	assert.Equal(t, 2, r)
	assert.False(t, expired)
	c.Tick()
	r, expired = c.Tick()
	assert.Equal(t, 0, r)
	assert.True(t, expired)
	assert.Equal(t, 7, c.Turn())

	_, expired = c.Tick()
	assert.False(t, expired, "expiry fires once per turn")
}

func TestTickBeforeStart(t *testing.T) {
	c := New(DefaultSettings())

	r, expired := c.Tick()
	assert.Equal(t, 0, r)
	assert.False(t, expired)
}

func TestBoost(t *testing.T) {
	c := New(DefaultSettings())
	c.StartTurn(0, 0)

	assert.False(t, c.Boost(1), "only the player on the clock may boost")
	require.True(t, c.Boost(0))
	assert.Equal(t, 45, c.Remaining())
	require.True(t, c.Boost(0))
	assert.False(t, c.Boost(0))
	assert.Equal(t, 60, c.Remaining())
	assert.Equal(t, 0, c.Boosts(0))
	assert.Equal(t, 2, c.Boosts(1))
}

func TestSabotageShortensNextTurn(t *testing.T) {
	c := New(DefaultSettings())
	c.StartTurn(0, 0)

	assert.False(t, c.Sabotage(1))
	require.True(t, c.Sabotage(0))
	assert.True(t, c.Sabotaged(1))
	assert.False(t, c.Sabotage(0))
	assert.Equal(t, 0, c.Sabotages(0))

	c.StartTurn(1, 1)
	assert.Equal(t, 20, c.Remaining())
	assert.False(t, c.Sabotaged(1))

	c.StartTurn(2, 1)
	assert.Equal(t, 30, c.Remaining(), "sabotage applies to one turn")
}

func TestStartTurn_IgnoresRepeatedAndEarlierTurns(t *testing.T) {
	c := New(DefaultSettings())
	require.True(t, c.StartTurn(0, 0))
	require.True(t, c.Sabotage(0))
	require.True(t, c.StartTurn(1, 1))
	c.Tick()
	require.Equal(t, 19, c.Remaining())

	assert.False(t, c.StartTurn(1, 1), "same turn")
	assert.False(t, c.StartTurn(0, 0), "earlier turn")
	assert.Equal(t, 19, c.Remaining())
	assert.Equal(t, 1, c.Turn())

	c.Reset()
	assert.True(t, c.StartTurn(0, 0), "a reset clock starts from turn 0 again")
}

func TestReset(t *testing.T) {
	c := New(DefaultSettings())
	c.StartTurn(3, 0)
	c.Boost(0)
	c.Sabotage(0)

	c.Reset()

	assert.False(t, c.Running())
	assert.Equal(t, 0, c.Turn())
	assert.Equal(t, 2, c.Boosts(0))
	assert.Equal(t, 1, c.Sabotages(0))
	assert.False(t, c.Sabotaged(1))
}
