package flux_test

import (
	"time"

	"github.com/reactkit/flux"
)

// game is the execution context used throughout the tests.
type game struct {
	frame  int
	score  int
	delta  time.Duration
	log    []string
	events flux.Events[string]
}

func (g *game) Delta() time.Duration { return g.delta }

// countdown builds an action that finishes on its nth step, counting
// every step into calls.
func countdown(n int, calls *int) flux.Action[*game, flux.Unit, flux.Unit] {
	return flux.NewSeed(func(_ flux.Unit, _ *flux.Token, out *flux.Output[flux.Unit]) flux.Runner[*game] {
		remaining := n
		return flux.RunnerFunc[*game](func(g *game, _ *flux.Token) bool {
			if calls != nil {
				*calls++
			}
			remaining--
			if remaining > 0 {
				return false
			}
			out.Set(flux.Unit{})
			return true
		})
	}).With(flux.Unit{})
}

// produceAfter is countdown with a payload.
func produceAfter[O any](n int, v O, calls *int) flux.Action[*game, flux.Unit, O] {
	return flux.NewSeed(func(_ flux.Unit, _ *flux.Token, out *flux.Output[O]) flux.Runner[*game] {
		remaining := n
		return flux.RunnerFunc[*game](func(g *game, _ *flux.Token) bool {
			if calls != nil {
				*calls++
			}
			remaining--
			if remaining > 0 {
				return false
			}
			out.Set(v)
			return true
		})
	}).With(flux.Unit{})
}
