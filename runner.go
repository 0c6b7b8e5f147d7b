package flux

// A Runner is the one-tick step function of an in-flight unit of work,
// polymorphic over the host's execution-context type W.
//
// Run executes against the shared execution context for exactly one
// discrete unit of host-loop progress and reports whether the work has
// finished. A runner retains whatever internal progress state it needs
// between calls (elapsed frames, partial timers). Once Run returns true,
// its owner never invokes it again.
//
// A runner must check tk at the start of every call; once cancelled, it
// stops mutating the execution context and keeps reporting false.
// Side effects on the context are otherwise the runner's business.
type Runner[W any] interface {
	Run(w W, tk *Token) bool
}

// A RunnerFunc is a func that implements the [Runner] interface.
type RunnerFunc[W any] func(w W, tk *Token) bool

// Run implements the [Runner] interface.
func (f RunnerFunc[W]) Run(w W, tk *Token) bool { return f(w, tk) }

// guarded enforces the runner contract around a constructed runner:
// it latches the finished state so the inner runner cannot be stepped
// again after reporting true, and it refuses to step the inner runner
// at all once the token is cancelled.
//
// Every runner minted through [Action.IntoRunner] is wrapped in one,
// so combinators and the reactor can rely on the contract centrally.
type guarded[W any] struct {
	inner Runner[W]
	done  bool
}

func (g *guarded[W]) Run(w W, tk *Token) bool {
	if g.done {
		return true
	}
	if tk.Canceled() {
		return false
	}
	if g.inner.Run(w, tk) {
		g.done = true
		g.inner = nil
		return true
	}
	return false
}
