package flux

import "slices"

// WaitUntil yields a unit of work that finishes on the first tick pred
// reports true.
func WaitUntil[W any](pred func(w W) bool) Seed[W, Unit, Unit] {
	if pred == nil {
		panic("flux: nil predicate")
	}
	return WaitUntilWith(func(w W, _ Unit) bool { return pred(w) })
}

// WaitUntilWith is [WaitUntil] with the bound input passed to the
// predicate on every tick.
func WaitUntilWith[W, I any](pred func(w W, input I) bool) Seed[W, I, Unit] {
	if pred == nil {
		panic("flux: nil predicate")
	}
	return NewSeed(func(input I, _ *Token, out *Output[Unit]) Runner[W] {
		return RunnerFunc[W](func(w W, _ *Token) bool {
			if !pred(w, input) {
				return false
			}
			out.Set(Unit{})
			return true
		})
	})
}

// WaitOutput polls f every tick and finishes, with the produced value,
// on the first tick f reports ok.
func WaitOutput[W, I, O any](f func(w W, input I) (O, bool)) Seed[W, I, O] {
	if f == nil {
		panic("flux: nil wait func")
	}
	return NewSeed(func(input I, _ *Token, out *Output[O]) Runner[W] {
		return RunnerFunc[W](func(w W, _ *Token) bool {
			v, ok := f(w, input)
			if !ok {
				return false
			}
			out.Set(v)
			return true
		})
	})
}

// WaitAny races the candidates and finishes as soon as one of them does.
// The output is the index of the winning candidate.
//
// One runner per candidate is built at construction, each with its own
// output slot and its own child token. Every tick the candidates are
// stepped once each, in index order, stopping at the first one that
// finishes; a tie within one tick therefore goes to the lowest index.
// The losing runners are dropped with their in-flight work abandoned.
//
// WaitAny panics if given no candidates.
func WaitAny[W any](candidates ...Action[W, Unit, Unit]) Action[W, Unit, int] {
	if len(candidates) == 0 {
		panic("flux: WaitAny requires at least one candidate")
	}
	cs := slices.Clone(candidates)
	return NewSeed(func(_ Unit, tk *Token, out *Output[int]) Runner[W] {
		r := &anyRunner[W]{out: out}
		for _, c := range cs {
			ctk := tk.Child()
			r.runners = append(r.runners, c.IntoRunner(ctk, NewOutput[Unit]()))
			r.tokens = append(r.tokens, ctk)
		}
		return r
	}).With(Unit{})
}

type anyRunner[W any] struct {
	out     *Output[int]
	runners []Runner[W]
	tokens  []*Token
}

func (r *anyRunner[W]) Run(w W, _ *Token) bool {
	winner := -1
	for i, c := range r.runners {
		if c.Run(w, r.tokens[i]) {
			winner = i
			break
		}
	}
	if winner < 0 {
		return false
	}
	r.runners = nil
	r.tokens = nil
	r.out.Set(winner)
	return true
}

// WaitAll finishes once every candidate has finished.
// Candidates that finished in an earlier tick are not stepped again.
//
// WaitAll panics if given no candidates.
func WaitAll[W any](candidates ...Action[W, Unit, Unit]) Action[W, Unit, Unit] {
	if len(candidates) == 0 {
		panic("flux: WaitAll requires at least one candidate")
	}
	cs := slices.Clone(candidates)
	return NewSeed(func(_ Unit, tk *Token, out *Output[Unit]) Runner[W] {
		r := &allRunner[W]{out: out, done: make([]bool, len(cs))}
		for _, c := range cs {
			ctk := tk.Child()
			r.runners = append(r.runners, c.IntoRunner(ctk, NewOutput[Unit]()))
			r.tokens = append(r.tokens, ctk)
		}
		return r
	}).With(Unit{})
}

type allRunner[W any] struct {
	out     *Output[Unit]
	runners []Runner[W]
	tokens  []*Token
	done    []bool
}

func (r *allRunner[W]) Run(w W, _ *Token) bool {
	remaining := 0
	for i, c := range r.runners {
		if r.done[i] {
			continue
		}
		if c.Run(w, r.tokens[i]) {
			r.done[i] = true
			r.runners[i] = nil
			continue
		}
		remaining++
	}
	if remaining > 0 {
		return false
	}
	r.runners = nil
	r.tokens = nil
	r.out.Set(Unit{})
	return true
}

// Either is a two-armed tagged result carrying whichever branch of
// [WaitEither] finished first.
type Either[L, R any] struct {
	left  *L
	right *R
}

// Left returns the left payload, if the left branch won.
func (e Either[L, R]) Left() (L, bool) {
	if e.left == nil {
		var zero L
		return zero, false
	}
	return *e.left, true
}

// Right returns the right payload, if the right branch won.
func (e Either[L, R]) Right() (R, bool) {
	if e.right == nil {
		var zero R
		return zero, false
	}
	return *e.right, true
}

// WaitEither races two actions and finishes with whichever payload
// arrives first; the left branch is stepped first each tick and wins
// same-tick ties. The losing runner is dropped.
func WaitEither[W, IL, OL, IR, OR any](left Action[W, IL, OL], right Action[W, IR, OR]) Action[W, Unit, Either[OL, OR]] {
	return NewSeed(func(_ Unit, tk *Token, out *Output[Either[OL, OR]]) Runner[W] {
		ltk, rtk := tk.Child(), tk.Child()
		lo, ro := NewOutput[OL](), NewOutput[OR]()
		lr, rr := left.IntoRunner(ltk, lo), right.IntoRunner(rtk, ro)
		return RunnerFunc[W](func(w W, _ *Token) bool {
			if lr.Run(w, ltk) {
				if v, ok := lo.Take(); ok {
					out.Set(Either[OL, OR]{left: &v})
					return true
				}
				return false
			}
			if rr.Run(w, rtk) {
				if v, ok := ro.Take(); ok {
					out.Set(Either[OL, OR]{right: &v})
					return true
				}
			}
			return false
		})
	}).With(Unit{})
}

// A Pair carries both payloads of [WaitBoth].
type Pair[A, B any] struct {
	First  A
	Second B
}

// WaitBoth runs two actions until both have finished and yields both
// payloads. A branch that finished in an earlier tick is not stepped
// again while the other catches up.
func WaitBoth[W, IL, OL, IR, OR any](left Action[W, IL, OL], right Action[W, IR, OR]) Action[W, Unit, Pair[OL, OR]] {
	return NewSeed(func(_ Unit, tk *Token, out *Output[Pair[OL, OR]]) Runner[W] {
		ltk, rtk := tk.Child(), tk.Child()
		lo, ro := NewOutput[OL](), NewOutput[OR]()
		lr, rr := left.IntoRunner(ltk, lo), right.IntoRunner(rtk, ro)
		var lv *OL
		var rv *OR
		return RunnerFunc[W](func(w W, _ *Token) bool {
			if lv == nil && lr.Run(w, ltk) {
				if v, ok := lo.Take(); ok {
					lv = &v
				}
			}
			if rv == nil && rr.Run(w, rtk) {
				if v, ok := ro.Take(); ok {
					rv = &v
				}
			}
			if lv == nil || rv == nil {
				return false
			}
			out.Set(Pair[OL, OR]{First: *lv, Second: *rv})
			return true
		})
	}).With(Unit{})
}
