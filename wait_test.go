package flux_test

import (
	"testing"

	"github.com/reactkit/flux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitUntil(t *testing.T) {
	g := new(game)
	a := flux.WaitUntil(func(g *game) bool { return g.frame >= 3 }).With(flux.Unit{})

	tk := flux.NewToken()
	out := flux.NewOutput[flux.Unit]()
	r := a.IntoRunner(tk, out)

	for g.frame = 0; g.frame < 3; g.frame++ {
		require.False(t, r.Run(g, tk))
	}
	require.True(t, r.Run(g, tk))
	assert.True(t, out.Ready())
}

func TestWaitOutput(t *testing.T) {
	g := new(game)
	a := flux.WaitOutput(func(g *game, threshold int) (int, bool) {
		if g.score < threshold {
			return 0, false
		}
		return g.score, true
	}).With(10)

	tk := flux.NewToken()
	out := flux.NewOutput[int]()
	r := a.IntoRunner(tk, out)

	g.score = 4
	require.False(t, r.Run(g, tk))
	g.score = 12
	require.True(t, r.Run(g, tk))

	v, ok := out.Take()
	require.True(t, ok)
	assert.Equal(t, 12, v)
}

func TestWaitAny(t *testing.T) {
	g := new(game)
	var c0, c1, c2 int
	a := flux.WaitAny(
		countdown(2, &c0),
		countdown(1, &c1),
		countdown(3, &c2),
	)

	tk := flux.NewToken()
	out := flux.NewOutput[int]()
	r := a.IntoRunner(tk, out)

	// The second candidate finishes on the first tick; the scan stops
	// there, so the third is never stepped at all.
	require.True(t, r.Run(g, tk))
	assert.Equal(t, 1, c0)
	assert.Equal(t, 1, c1)
	assert.Equal(t, 0, c2)

	winner, ok := out.Take()
	require.True(t, ok)
	assert.Equal(t, 1, winner)
}

func TestWaitAnyTieGoesToLowestIndex(t *testing.T) {
	g := new(game)
	a := flux.WaitAny(countdown(2, nil), countdown(2, nil))

	tk := flux.NewToken()
	out := flux.NewOutput[int]()
	r := a.IntoRunner(tk, out)

	require.False(t, r.Run(g, tk))
	require.True(t, r.Run(g, tk))

	winner, ok := out.Take()
	require.True(t, ok)
	assert.Equal(t, 0, winner)
}

func TestWaitAnyNoCandidates(t *testing.T) {
	assert.PanicsWithValue(t, "flux: WaitAny requires at least one candidate", func() {
		flux.WaitAny[*game]()
	})
}

func TestWaitAll(t *testing.T) {
	g := new(game)
	var c0, c1 int
	a := flux.WaitAll(countdown(2, &c0), countdown(1, &c1))

	tk := flux.NewToken()
	out := flux.NewOutput[flux.Unit]()
	r := a.IntoRunner(tk, out)

	require.False(t, r.Run(g, tk))
	assert.Equal(t, 1, c0)
	assert.Equal(t, 1, c1)

	// The finished candidate is not stepped again.
	require.True(t, r.Run(g, tk))
	assert.Equal(t, 2, c0)
	assert.Equal(t, 1, c1)
	assert.True(t, out.Ready())
}

func TestWaitAllNoCandidates(t *testing.T) {
	assert.PanicsWithValue(t, "flux: WaitAll requires at least one candidate", func() {
		flux.WaitAll[*game]()
	})
}

func TestWaitEither(t *testing.T) {
	g := new(game)
	var leftCalls int
	a := flux.WaitEither(
		produceAfter(3, "slow", &leftCalls),
		produceAfter(2, 7, nil),
	)

	tk := flux.NewToken()
	out := flux.NewOutput[flux.Either[string, int]]()
	r := a.IntoRunner(tk, out)

	require.False(t, r.Run(g, tk))
	require.True(t, r.Run(g, tk))
	assert.Equal(t, 2, leftCalls)

	e, ok := out.Take()
	require.True(t, ok)

	v, ok := e.Right()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = e.Left()
	assert.False(t, ok)
}

func TestWaitEitherLeftWinsTies(t *testing.T) {
	g := new(game)
	a := flux.WaitEither(produceAfter(1, "left", nil), produceAfter(1, 1, nil))

	tk := flux.NewToken()
	out := flux.NewOutput[flux.Either[string, int]]()
	r := a.IntoRunner(tk, out)

	require.True(t, r.Run(g, tk))

	e, _ := out.Take()
	v, ok := e.Left()
	require.True(t, ok)
	assert.Equal(t, "left", v)
}

func TestWaitBoth(t *testing.T) {
	g := new(game)
	var leftCalls int
	a := flux.WaitBoth(
		produceAfter(1, "hello", &leftCalls),
		produceAfter(3, 42, nil),
	)

	tk := flux.NewToken()
	out := flux.NewOutput[flux.Pair[string, int]]()
	r := a.IntoRunner(tk, out)

	require.False(t, r.Run(g, tk))
	require.False(t, r.Run(g, tk))
	require.True(t, r.Run(g, tk))

	// The left branch finished on tick 1 and was left alone after.
	assert.Equal(t, 1, leftCalls)

	p, ok := out.Take()
	require.True(t, ok)
	assert.Equal(t, "hello", p.First)
	assert.Equal(t, 42, p.Second)
}
