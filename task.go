package flux

// A Task is the capability handle passed into a workflow body, enabling
// it to issue suspensions against the owning [Reactor] through [Will].
// It carries no state of its own and must not escape the workflow.
type Task[W any] struct {
	r     *Reactor[W]
	yield func(Unit) bool
}

// Will is the sole suspension primitive: it registers a runner for the
// action against the given phase and yields the workflow until that
// runner finishes, resuming with the action's output value.
//
// The runner is bound to a child of the reactor's cancellation token
// and stepped immediately against the current execution context, so an
// immediately-finishing action returns synchronously, within the same
// drive call, consuming no extra tick. Otherwise the workflow yields
// and the runner is stepped once per
// tick (by [Reactor.Drive], or by [Reactor.Poll] for its phase) until it
// finishes.
//
// Will panics if called outside a drive call (an escaped Task handle)
// or while another suspension is already pending.
func Will[W, I, O any](t Task[W], phase Phase, a Action[W, I, O]) O {
	r := t.r
	if r == nil {
		panic("flux: zero task handle")
	}
	if !r.live {
		panic("flux: task handle used outside a drive call")
	}
	if r.pending != nil {
		panic("flux: a suspension is already pending")
	}
	out := NewOutput[O]()
	tk := r.token.Child()
	p := &pending[W]{phase: phase, runner: a.IntoRunner(tk, out), token: tk}
	r.pending = p
	for {
		if !p.finished && !p.polled {
			p.polled = true
			p.finished = p.runner.Run(r.world, tk)
		}
		if p.finished {
			if v, ok := out.Take(); ok {
				r.pending = nil
				return v
			}
		}
		if !t.yield(Unit{}) {
			panic(stopSignal{})
		}
	}
}
