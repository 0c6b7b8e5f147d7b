package flux

// Events is a frame event queue a host embeds in its execution context.
// Runners send into it or consume from it one event per tick; the host
// drains whatever its own systems want to observe.
//
// An Events must not be shared across scheduler threads.
type Events[E any] struct {
	queue []E
}

// Send appends an event.
func (q *Events[E]) Send(e E) {
	q.queue = append(q.queue, e)
}

// Len reports the number of queued events.
func (q *Events[E]) Len() int {
	return len(q.queue)
}

// Drain removes and returns all queued events.
func (q *Events[E]) Drain() []E {
	s := q.queue
	q.queue = nil
	return s
}

func (q *Events[E]) pop() (E, bool) {
	if len(q.queue) == 0 {
		var zero E
		return zero, false
	}
	e := q.queue[0]
	q.queue = q.queue[1:]
	return e, true
}

// OnceSend yields a unit of work that sends the bound event into the
// context's queue once and finishes.
func OnceSend[W, E any](events func(w W) *Events[E]) Seed[W, E, Unit] {
	if events == nil {
		panic("flux: nil events accessor")
	}
	return OnceWith(func(w W, e E) Unit {
		events(w).Send(e)
		return Unit{}
	})
}

// WaitEvent yields a unit of work that finishes with the first event that
// arrives in the context's queue, consuming it.
func WaitEvent[W, E any](events func(w W) *Events[E]) Seed[W, Unit, E] {
	if events == nil {
		panic("flux: nil events accessor")
	}
	return NewSeed(func(_ Unit, _ *Token, out *Output[E]) Runner[W] {
		return RunnerFunc[W](func(w W, _ *Token) bool {
			e, ok := events(w).pop()
			if !ok {
				return false
			}
			out.Set(e)
			return true
		})
	})
}
