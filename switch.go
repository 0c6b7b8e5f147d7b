package flux

// A Toggle selects between the two branches of [SwitchBetween].
// It is flipped externally, never by the composed runner itself.
type Toggle struct {
	on bool
}

// NewToggle creates a [Toggle] with the given initial position.
func NewToggle(on bool) *Toggle {
	return &Toggle{on: on}
}

// TurnOn selects the on branch.
func (t *Toggle) TurnOn() { t.on = true }

// TurnOff selects the off branch.
func (t *Toggle) TurnOff() { t.on = false }

// Set selects the on branch if on is true, the off branch otherwise.
func (t *Toggle) Set(on bool) { t.on = on }

// On reports the current position.
func (t *Toggle) On() bool { return t.on }

// SwitchBetween composes two pre-built branches selected by an external
// [Toggle]. The toggle is re-read on every tick, so flipping it between
// two ticks redirects control before the previously active branch's next
// step, even with unfinished progress. The composed unit finishes when
// whichever branch is selected at that tick finishes, yielding that
// branch's output.
func SwitchBetween[W, I1, I2, O any](t *Toggle, on Action[W, I1, O], off Action[W, I2, O]) Action[W, Unit, O] {
	if t == nil {
		panic("flux: nil toggle")
	}
	return NewSeed(func(_ Unit, tk *Token, out *Output[O]) Runner[W] {
		onOut, offOut := NewOutput[O](), NewOutput[O]()
		return &switchRunner[W, O]{
			toggle: t,
			on:     branch[W, O]{on.IntoRunner(tk.Child(), onOut), onOut},
			off:    branch[W, O]{off.IntoRunner(tk.Child(), offOut), offOut},
			out:    out,
		}
	}).With(Unit{})
}

type branch[W, O any] struct {
	runner Runner[W]
	out    *Output[O]
}

type switchRunner[W, O any] struct {
	toggle  *Toggle
	on, off branch[W, O]
	out     *Output[O]
}

func (r *switchRunner[W, O]) Run(w W, tk *Token) bool {
	b := &r.off
	if r.toggle.On() {
		b = &r.on
	}
	if !b.runner.Run(w, tk) {
		return false
	}
	v, ok := b.out.Take()
	if !ok {
		return false
	}
	r.out.Set(v)
	return true
}
