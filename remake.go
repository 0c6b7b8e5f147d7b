package flux

// Remake is the generic wrap-one-runner primitive the structural
// combinators are built on: it turns a Seed producing O1 into a Seed of
// output type O2 by rewrapping the constructed inner runner.
//
// At construction time f receives the inner runner, the fresh [Output]
// slot that inner runner writes into, the cancellation [Token] (shared
// with the inner runner), and the [Output] the new unit must eventually
// fill.
func Remake[W, I, O1, O2 any](
	s Seed[W, I, O1],
	f func(r Runner[W], inner *Output[O1], tk *Token, out *Output[O2]) Runner[W],
) Seed[W, I, O2] {
	if f == nil {
		panic("flux: nil remake func")
	}
	return NewSeed(func(input I, tk *Token, out *Output[O2]) Runner[W] {
		inner := NewOutput[O1]()
		return f(s.With(input).IntoRunner(tk, inner), inner, tk, out)
	})
}

// RemakeAction is [Remake] for an input-bound [Action].
func RemakeAction[W, I, O1, O2 any](
	a Action[W, I, O1],
	f func(r Runner[W], inner *Output[O1], tk *Token, out *Output[O2]) Runner[W],
) Action[W, I, O2] {
	return Remake(a.seed, f).With(a.input)
}
