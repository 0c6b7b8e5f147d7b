package flux

// A Seed is a reusable blueprint of a unit of work: given a bound input
// value, a cancellation [Token] and an [Output] slot, it constructs a
// [Runner].
//
// Seeds are stateless between constructions. Each construction yields an
// independent runner instance, so a seed can be stored and instantiated
// any number of times, in any number of reactors, without interference.
// All per-activation state belongs to the constructed runner.
type Seed[W, I, O any] struct {
	construct func(input I, tk *Token, out *Output[O]) Runner[W]
}

// NewSeed wraps a runner constructor in a [Seed].
//
// The constructor must not perform any execution-context work; only
// [Runner.Run] does.
func NewSeed[W, I, O any](construct func(input I, tk *Token, out *Output[O]) Runner[W]) Seed[W, I, O] {
	if construct == nil {
		panic("flux: nil runner constructor")
	}
	return Seed[W, I, O]{construct: construct}
}

// With binds s to a concrete input value, producing an [Action] ready to
// be turned into a runner without further parameters.
func (s Seed[W, I, O]) With(input I) Action[W, I, O] {
	return Action[W, I, O]{seed: s, input: input}
}

// An Action is a [Seed] together with a concrete input value.
// This is the unit coroutines actually await, via [Will].
type Action[W, I, O any] struct {
	seed  Seed[W, I, O]
	input I
}

// IntoRunner eagerly constructs the runner for a, writing its result
// into out. A nil tk creates a fresh root token; combinators pass one
// down to propagate cancellation.
func (a Action[W, I, O]) IntoRunner(tk *Token, out *Output[O]) Runner[W] {
	if tk == nil {
		tk = NewToken()
	}
	return &guarded[W]{inner: a.seed.construct(a.input, tk, out)}
}
