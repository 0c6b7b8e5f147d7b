package flux

import "time"

// DelayFrames yields a unit of work that finishes after being stepped
// the bound number of ticks. A bound of 1 finishes on its first step;
// a bound of 0 or less finishes likewise.
func DelayFrames[W any]() Seed[W, int, Unit] {
	return NewSeed(func(frames int, _ *Token, out *Output[Unit]) Runner[W] {
		elapsed := 0
		return RunnerFunc[W](func(w W, _ *Token) bool {
			elapsed++
			if frames > elapsed {
				return false
			}
			out.Set(Unit{})
			return true
		})
	})
}

// Clock is the capability an execution context provides for time-based
// waits: the simulated time elapsed since the previous tick.
type Clock interface {
	Delta() time.Duration
}

// DelayTime yields a unit of work that finishes once the bound duration
// of context time has accumulated across ticks.
func DelayTime[W Clock]() Seed[W, time.Duration, Unit] {
	return NewSeed(func(d time.Duration, _ *Token, out *Output[Unit]) Runner[W] {
		var elapsed time.Duration
		return RunnerFunc[W](func(w W, _ *Token) bool {
			elapsed += w.Delta()
			if elapsed < d {
				return false
			}
			out.Set(Unit{})
			return true
		})
	})
}
