package flux

// Then runs first to completion, discards its output, then constructs and
// runs second from scratch. The composed output is second's output.
//
// Like [Pipe], the second stage starts in the same tick the first one
// finishes.
func Then[W, I1, O1, I2, O2 any](first Action[W, I1, O1], second Action[W, I2, O2]) Action[W, I1, O2] {
	return RemakeAction(first, func(r Runner[W], inner *Output[O1], tk *Token, out *Output[O2]) Runner[W] {
		return &thenRunner[W, I2, O1, O2]{
			first:    r,
			firstOut: inner,
			second:   second,
			token:    tk,
			out:      out,
		}
	})
}

type thenRunner[W, I2, O1, O2 any] struct {
	first    Runner[W]
	firstOut *Output[O1]
	second   Action[W, I2, O2]
	active   Runner[W]
	token    *Token
	out      *Output[O2]
}

func (r *thenRunner[W, I2, O1, O2]) Run(w W, tk *Token) bool {
	if r.active == nil {
		if !r.first.Run(w, tk) {
			return false
		}
		r.firstOut.Take() // Discarded.
		r.active = r.second.IntoRunner(r.token, r.out)
		r.first = nil
	}
	return r.active.Run(w, tk)
}

// Omit erases an action's input and output types, producing a fully
// anonymous action. Candidates for [WaitAny] and [WaitAll] are built
// this way.
func Omit[W, I, O any](a Action[W, I, O]) Action[W, Unit, Unit] {
	return NewSeed(func(_ Unit, tk *Token, out *Output[Unit]) Runner[W] {
		inner := NewOutput[O]()
		r := a.IntoRunner(tk, inner)
		return RunnerFunc[W](func(w W, tk *Token) bool {
			if !r.Run(w, tk) {
				return false
			}
			inner.Take()
			out.Set(Unit{})
			return true
		})
	}).With(Unit{})
}

// OmitOutput erases an action's output type only.
func OmitOutput[W, I, O any](a Action[W, I, O]) Action[W, I, Unit] {
	return RemakeAction(a, func(r Runner[W], inner *Output[O], _ *Token, out *Output[Unit]) Runner[W] {
		return RunnerFunc[W](func(w W, tk *Token) bool {
			if !r.Run(w, tk) {
				return false
			}
			inner.Take()
			out.Set(Unit{})
			return true
		})
	})
}

// Through runs an action for its effect while passing the pipeline value
// through unchanged, so it can be spliced into a [Pipe] without
// disturbing the value flowing past it.
func Through[W, I any](a Action[W, Unit, Unit]) Seed[W, I, I] {
	return NewSeed(func(input I, tk *Token, out *Output[I]) Runner[W] {
		r := a.IntoRunner(tk, NewOutput[Unit]())
		return RunnerFunc[W](func(w W, tk *Token) bool {
			if !r.Run(w, tk) {
				return false
			}
			out.Set(input)
			return true
		})
	})
}
