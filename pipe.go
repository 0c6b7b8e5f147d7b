package flux

// Pipe sequentially composes two seeds, feeding the first stage's output
// into the second as its input.
//
// The composed runner drives the first stage each tick. Once it finishes,
// its output is taken, the second stage is constructed around that value
// and stepped immediately, so a chain of immediately-finishing stages
// completes within a single tick. The composed unit finishes when the
// second stage does.
func Pipe[W, I, M, O any](first Seed[W, I, M], second Seed[W, M, O]) Seed[W, I, O] {
	return Remake(first, func(r Runner[W], inner *Output[M], tk *Token, out *Output[O]) Runner[W] {
		return &pipeRunner[W, M, O]{
			first:    r,
			firstOut: inner,
			second:   second,
			token:    tk,
			out:      out,
		}
	})
}

// PipeAction is [Pipe] with the first stage's input already bound.
func PipeAction[W, I, M, O any](first Action[W, I, M], second Seed[W, M, O]) Action[W, I, O] {
	return Pipe(first.seed, second).With(first.input)
}

type pipeRunner[W, M, O any] struct {
	first    Runner[W]
	firstOut *Output[M]
	second   Seed[W, M, O]
	active   Runner[W] // second stage, once constructed
	token    *Token
	out      *Output[O]
}

func (r *pipeRunner[W, M, O]) Run(w W, tk *Token) bool {
	if r.active == nil {
		if !r.first.Run(w, tk) {
			return false
		}
		m, ok := r.firstOut.Take()
		if !ok {
			return false
		}
		r.active = r.second.With(m).IntoRunner(r.token, r.out)
		r.first = nil
	}
	return r.active.Run(w, tk)
}

// Map transforms a seed's output with f.
func Map[W, I, O, T any](s Seed[W, I, O], f func(O) T) Seed[W, I, T] {
	if f == nil {
		panic("flux: nil map func")
	}
	return Remake(s, func(r Runner[W], inner *Output[O], _ *Token, out *Output[T]) Runner[W] {
		return RunnerFunc[W](func(w W, tk *Token) bool {
			if !r.Run(w, tk) {
				return false
			}
			v, ok := inner.Take()
			if !ok {
				return false
			}
			out.Set(f(v))
			return true
		})
	})
}

// MapAction is [Map] for an input-bound [Action].
func MapAction[W, I, O, T any](a Action[W, I, O], f func(O) T) Action[W, I, T] {
	return Map(a.seed, f).With(a.input)
}
