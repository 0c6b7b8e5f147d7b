package flux

// Once yields a unit of work that runs f against the execution context
// exactly once and finishes immediately with its result.
func Once[W, O any](f func(w W) O) Seed[W, Unit, O] {
	if f == nil {
		panic("flux: nil once func")
	}
	return OnceWith(func(w W, _ Unit) O { return f(w) })
}

// OnceWith is [Once] with the bound input passed to f.
func OnceWith[W, I, O any](f func(w W, input I) O) Seed[W, I, O] {
	if f == nil {
		panic("flux: nil once func")
	}
	return NewSeed(func(input I, _ *Token, out *Output[O]) Runner[W] {
		return RunnerFunc[W](func(w W, _ *Token) bool {
			out.Set(f(w, input))
			return true
		})
	})
}
