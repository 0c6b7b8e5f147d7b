package flux_test

import (
	"testing"

	"github.com/reactkit/flux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	tg := flux.NewToggle(false)
	assert.False(t, tg.On())

	tg.TurnOn()
	assert.True(t, tg.On())

	tg.TurnOff()
	assert.False(t, tg.On())

	tg.Set(true)
	assert.True(t, tg.On())
}

func TestSwitchBetween(t *testing.T) {
	g := new(game)
	var onCalls, offCalls int
	tg := flux.NewToggle(true)
	a := flux.SwitchBetween(tg,
		produceAfter(3, "on wins", &onCalls),
		produceAfter(10, "off wins", &offCalls))

	out := flux.NewOutput[string]()
	tk := flux.NewToken()
	r := a.IntoRunner(tk, out)

	// Tick 1: on branch.
	require.False(t, r.Run(g, tk))
	assert.Equal(t, 1, onCalls)
	assert.Equal(t, 0, offCalls)

	// Flip between ticks: the off branch takes over before the on
	// branch's next step, keeping the on branch's progress frozen.
	tg.TurnOff()
	require.False(t, r.Run(g, tk))
	assert.Equal(t, 1, onCalls)
	assert.Equal(t, 1, offCalls)

	// Flip back: the on branch resumes from where it stopped.
	tg.TurnOn()
	require.False(t, r.Run(g, tk))
	require.True(t, r.Run(g, tk))
	assert.Equal(t, 3, onCalls)
	assert.Equal(t, 1, offCalls)

	v, ok := out.Take()
	require.True(t, ok)
	assert.Equal(t, "on wins", v)
}

func TestSwitchBetweenNilToggle(t *testing.T) {
	assert.PanicsWithValue(t, "flux: nil toggle", func() {
		flux.SwitchBetween(nil, countdown(1, nil), countdown(1, nil))
	})
}
