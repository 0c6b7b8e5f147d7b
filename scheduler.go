package flux

import (
	"log/slog"
	"slices"
)

// An Option configures a [Scheduler].
type Option func(*schedulerConfig)

type schedulerConfig struct {
	phases []Phase
	logger *slog.Logger
}

// WithPhases sets the ordered list of host-loop phases the scheduler
// steps pending runners from, each tick, before driving the workflows.
// A pending runner registered against a phase outside the list is
// stepped by its reactor's own drive instead.
func WithPhases(phases ...Phase) Option {
	return func(c *schedulerConfig) { c.phases = slices.Clone(phases) }
}

// WithLogger sets the structured logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *schedulerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// A Scheduler is the host-side collaborator that owns live reactors and
// drives them once per external tick.
//
// Reactors are iterated in a fixed order: by weight, heaviest first,
// then by spawn order. Each reactor is stepped to its next suspension
// (or to completion) before the next one is touched. There is no
// interleaving within a tick, and no parallelism anywhere.
//
// A Scheduler must only ever be used from the host loop's thread.
type Scheduler[W any] struct {
	reactors spawnQueue[*Reactor[W]]
	phases   []Phase
	log      *slog.Logger
	nextSeq  uint64
}

// NewScheduler creates an empty [Scheduler].
func NewScheduler[W any](opts ...Option) *Scheduler[W] {
	cfg := schedulerConfig{logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(&cfg)
	}
	return &Scheduler[W]{phases: cfg.phases, log: cfg.logger}
}

// Len reports the number of live reactors.
func (s *Scheduler[W]) Len() int {
	return len(s.reactors.Items())
}

// Spawn registers r, to be picked up by the next [Scheduler.Startup] or
// [Scheduler.Tick]. It returns r.
func (s *Scheduler[W]) Spawn(r *Reactor[W]) *Reactor[W] {
	r.seq = s.nextSeq
	s.nextSeq++
	s.reactors.Insert(r)
	s.log.Debug("reactor spawned", "reactor_id", r.id, "weight", int(r.weight))
	return r
}

// SpawnInitialized schedules workflow f, drives the new reactor once
// against w immediately, and marks it initialized, so that the next tick
// treats it like any other steady-state reactor instead of double-driving
// it.
func (s *Scheduler[W]) SpawnInitialized(w W, f func(t Task[W])) *Reactor[W] {
	r := s.Spawn(Schedule(f))
	defer func() {
		if v := recover(); v != nil {
			s.kill(r)
			s.sweep()
			panic(v)
		}
	}()
	r.Drive(w)
	r.MarkInitialized()
	s.sweep()
	return r
}

// Startup drives every not-yet-initialized reactor once and marks it
// initialized. Hosts call it once after registration, before the first
// steady-state tick; together with the extra drive [Scheduler.Tick]
// gives reactors it has not seen before, this is what makes a reactor
// registered pre-tick receive two drives before the first steady-state
// tick completes.
func (s *Scheduler[W]) Startup(w W) {
	var pc catcher
	for _, r := range slices.Clone(s.reactors.Items()) {
		if r.done || r.initialized {
			continue
		}
		r.MarkInitialized()
		s.drive(&pc, r, w)
	}
	s.sweep()
	pc.rethrow()
}

// Tick advances every live reactor by one steady-state step.
//
// Pending runners are first stepped phase by phase in the configured
// phase order. Then each reactor is driven once. A reactor first seen
// during this tick (spawned since the previous pass, still unmarked)
// is marked initialized and driven a second time, matching the extra
// drive that [Scheduler.Startup] gives reactors registered up front.
// Consequently a one-frame delay awaited by a reactor that appears
// mid-cycle completes one tick sooner than the same delay awaited by a
// reactor that was already initialized.
//
// Completed reactors are removed after the pass. A panicking workflow
// is cancelled and removed, the remaining reactors still get their
// step, and the collected panics are rethrown as a [*TickPanic].
func (s *Scheduler[W]) Tick(w W) {
	var pc catcher
	snapshot := slices.Clone(s.reactors.Items())
	for _, phase := range s.phases {
		for _, r := range snapshot {
			if r.done {
				continue
			}
			if !pc.try(r.id, func() { r.Poll(w, phase) }) {
				s.kill(r)
			}
		}
	}
	for _, r := range snapshot {
		if r.done {
			continue
		}
		if !s.drive(&pc, r, w) {
			continue
		}
		if !r.initialized && !r.done {
			r.MarkInitialized()
			s.drive(&pc, r, w)
		}
	}
	s.sweep()
	pc.rethrow()
}

func (s *Scheduler[W]) drive(pc *catcher, r *Reactor[W], w W) bool {
	if !pc.try(r.id, func() { r.Drive(w) }) {
		s.kill(r)
		return false
	}
	if r.done {
		s.log.Debug("reactor completed", "reactor_id", r.id)
	}
	return true
}

func (s *Scheduler[W]) kill(r *Reactor[W]) {
	r.token.Cancel()
	r.done = true
	s.log.Error("reactor panicked", "reactor_id", r.id)
}

func (s *Scheduler[W]) sweep() {
	s.reactors.DeleteFunc(func(r *Reactor[W]) bool { return r.done })
}
