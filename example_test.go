package flux_test

import (
	"fmt"

	"github.com/reactkit/flux"
)

func Example() {
	g := new(game)
	s := flux.NewScheduler[*game]()

	s.Spawn(flux.Schedule(func(t flux.Task[*game]) {
		flux.Will(t, flux.Update, flux.Once(func(g *game) flux.Unit {
			fmt.Println("started")
			return flux.Unit{}
		}).With(flux.Unit{}))

		flux.Will(t, flux.Update, flux.DelayFrames[*game]().With(3))

		fmt.Println("after delay")
	}))

	s.Startup(g)
	for range 3 {
		s.Tick(g)
	}

	// Output:
	// started
	// after delay
}

func ExampleWaitAny() {
	g := new(game)
	s := flux.NewScheduler[*game]()

	s.Spawn(flux.Schedule(func(t flux.Task[*game]) {
		winner := flux.Will(t, flux.Update, flux.WaitAny(
			flux.Omit(flux.DelayFrames[*game]().With(5)),
			flux.Omit(flux.DelayFrames[*game]().With(2)),
		))
		fmt.Println("winner:", winner)
	}))

	s.Startup(g)
	for s.Len() > 0 {
		s.Tick(g)
	}

	// Output:
	// winner: 1
}

// This example wires two multi-step stages together: the first counts
// down a few frames and produces a value, the second formats it.
func ExamplePipe() {
	g := &game{score: 3}
	s := flux.NewScheduler[*game]()

	s.Spawn(flux.Schedule(func(t flux.Task[*game]) {
		a := flux.PipeAction(
			flux.Once(func(g *game) int { return g.score * g.score }).With(flux.Unit{}),
			flux.OnceWith(func(_ *game, v int) string {
				return fmt.Sprintf("score squared: %d", v)
			}),
		)
		fmt.Println(flux.Will(t, flux.Update, a))
	}))

	s.Startup(g)

	// Output:
	// score squared: 9
}
