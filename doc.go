// Package flux is a library for writing tick-driven cooperative workflows.
//
// Many programs are built around a host loop: a game frame, a simulation
// step, a polling cycle. Logic that spans several iterations of such a loop
// is usually written as a hand-rolled state machine. This library lets one
// write it as a plain sequential function instead, suspended and resumed
// one step per tick.
//
// # Reactors and Workflows
//
// A workflow is an ordinary function that receives a [Task] handle.
// [Schedule] wraps it in a [Reactor], which the host drives once per tick
// with [Reactor.Drive]. Inside the workflow, [Will] suspends until an
// action finishes and resumes with its output:
//
//	r := flux.Schedule(func(t flux.Task[*Game]) {
//		flux.Will(t, flux.Update, flux.DelayFrames[*Game]().With(30))
//		score := flux.Will(t, flux.Update, flux.Once(func(g *Game) int {
//			return g.Score
//		}).With(flux.Unit{}))
//		_ = score
//	})
//
// Everything runs on the host's thread. There are no goroutines, no
// channels and no locks anywhere in this library; a suspended workflow
// consumes nothing until its next drive.
//
// # Actions, Seeds and Runners
//
// A [Runner] is one unit of multi-tick work: a step function called once
// per tick until it reports finished, writing its result into an [Output].
// A [Seed] is a reusable recipe that, given an input, constructs a fresh
// Runner; binding an input with [Seed.With] produces an [Action], the value
// [Will] consumes.
//
// Seeds compose. [Pipe] feeds one action's output to the next as input,
// [Then] runs two in order, [SwitchBetween] flips between two actions on a
// [Toggle], [WaitAny] races several and reports the winner, and [Remake]
// is the primitive underneath them all: it wraps a seed's runner in a new
// one while sharing the same cancellation token.
//
// # Cancellation
//
// Every suspension runs under a child of its reactor's root [Token].
// Cancellation is cooperative and permanent: a canceled runner is never
// stepped again, and whatever it was mid-way through simply stops
// progressing. [Reactor.Cancel] abandons the current suspension;
// [Reactor.Dispose] additionally unwinds the suspended workflow so its
// stack is released.
//
// # Driving Many Reactors
//
// Hosts with a single reactor call [Reactor.Drive] directly. Hosts with
// many use a [Scheduler], which owns the set, drives it in weight order
// every [Scheduler.Tick], steps phase-registered suspensions via
// [WithPhases], removes completed reactors, and isolates panicking
// workflows from the rest of the pass (see [TickPanic]).
package flux
