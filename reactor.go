package flux

import (
	"iter"

	"github.com/google/uuid"
)

// Weight is the type of weight for use when ordering reactors in
// a [Scheduler]. Heavier reactors are driven first.
type Weight int

// A Phase identifies the host-loop phase a suspension's runner is
// registered against. Phase values are meaningful to the host loop, not
// to the engine; a [Scheduler] configured with [WithPhases] steps pending
// runners phase by phase in that order.
type Phase string

// Conventional phase identifiers for hosts that do not define their own.
const (
	First      Phase = "first"
	PreUpdate  Phase = "pre_update"
	Update     Phase = "update"
	PostUpdate Phase = "post_update"
	Last       Phase = "last"
)

// stopSignal unwinds a suspended workflow when its reactor is disposed.
type stopSignal struct{}

// A Reactor owns one workflow coroutine and the machinery to resume it by
// exactly one logical step whenever it is driven. It is the single thing
// exposed to, and driven by, the host loop.
//
// Lifecycle: a reactor is created scheduled but not yet initialized; its
// first drive performs the workflow's first resumption, which may chain
// straight into its first suspension. It is then driven once per host
// tick until the workflow completes, after which further drives are
// no-ops. The initialized mark is bookkeeping owned by the host
// collaborator (see [Scheduler.Tick]); the reactor only stores it.
//
// A Reactor must not be shared across goroutines; the whole engine is
// single-threaded and tick-driven.
type Reactor[W any] struct {
	id     uuid.UUID
	weight Weight
	seq    uint64

	resume func() (Unit, bool)
	stop   func()
	token  *Token

	world   W
	live    bool
	pending *pending[W]

	initialized bool
	done        bool
}

type pending[W any] struct {
	phase    Phase
	runner   Runner[W]
	token    *Token
	polled   bool
	finished bool
}

// Schedule builds an un-driven [Reactor] from a workflow function.
//
// The workflow receives a [Task] handle, through which [Will] issues
// suspensions; everything else in the body is ordinary sequential code.
// Nothing runs until the first drive.
func Schedule[W any](f func(t Task[W])) *Reactor[W] {
	if f == nil {
		panic("flux: nil workflow")
	}
	r := &Reactor[W]{id: uuid.New(), token: NewToken()}
	body := func(yield func(Unit) bool) {
		defer func() {
			if v := recover(); v != nil {
				if _, ok := v.(stopSignal); ok {
					return
				}
				panic(v)
			}
		}()
		f(Task[W]{r: r, yield: yield})
	}
	r.resume, r.stop = iter.Pull(iter.Seq[Unit](body))
	return r
}

// WithWeight sets the weight of r, determining its drive order within
// a [Scheduler]: heavier first, spawn order within a weight.
func (r *Reactor[W]) WithWeight(w Weight) *Reactor[W] {
	r.weight = w
	return r
}

// ID returns the unique identity of r.
func (r *Reactor[W]) ID() uuid.UUID { return r.id }

// Weight returns the weight of r.
func (r *Reactor[W]) Weight() Weight { return r.weight }

// Done reports whether the workflow has completed or r has been disposed.
func (r *Reactor[W]) Done() bool { return r.done }

// Initialized reports whether the host collaborator has marked r as
// having received its first drive.
func (r *Reactor[W]) Initialized() bool { return r.initialized }

// MarkInitialized records that r has received its first drive.
// It is the host collaborator's job to call this; see [Scheduler.Tick].
func (r *Reactor[W]) MarkInitialized() { r.initialized = true }

// Token returns the root cancellation token of r. Suspension runners are
// constructed against children of it.
func (r *Reactor[W]) Token() *Token { return r.token }

// Cancel cancels the root token of r.
//
// Cancellation is cooperative: the pending runner stops progressing, the
// workflow stays suspended, and no further execution-context mutation
// happens on r's behalf. Use [Reactor.Dispose] to also unwind the
// suspended workflow.
func (r *Reactor[W]) Cancel() {
	r.token.Cancel()
}

// Dispose cancels r, unwinds its suspended workflow without resuming it,
// and marks it done. Disposing a completed reactor is a no-op.
func (r *Reactor[W]) Dispose() {
	if r.live {
		panic("flux: dispose during drive")
	}
	r.token.Cancel()
	r.stop()
	r.pending = nil
	r.done = true
}

// Drive advances r by exactly one step against the current execution
// context: the pending runner, if any, is stepped once (unless a phase
// poll already stepped it this tick), and the workflow is resumed as far
// as it can go without another host round-trip. Chained
// immediately-finishing suspensions all complete within the one call.
//
// Drive is idempotent once the workflow has completed. The context w is
// only valid for the duration of the call; the workflow observes it
// solely through runner steps.
func (r *Reactor[W]) Drive(w W) {
	if r.done {
		return
	}
	if r.live {
		panic("flux: reentrant drive")
	}
	r.world, r.live = w, true
	defer func() {
		var zero W
		r.world, r.live = zero, false
		if p := r.pending; p != nil {
			p.polled = false
		}
	}()
	if p := r.pending; p != nil {
		if !p.finished && !p.polled {
			p.polled = true
			p.finished = p.runner.Run(w, p.token)
		}
		if !p.finished {
			return
		}
	}
	if _, ok := r.resume(); !ok {
		r.done = true
	}
}

// Poll steps r's pending runner once if it is registered against the
// given phase and has not been stepped yet this tick. The workflow is
// not resumed; a following [Reactor.Drive] picks up the result.
// Phase-aware hosts call this from each phase of their loop.
func (r *Reactor[W]) Poll(w W, phase Phase) {
	if r.done {
		return
	}
	p := r.pending
	if p == nil || p.phase != phase || p.polled || p.finished {
		return
	}
	p.polled = true
	p.finished = p.runner.Run(w, p.token)
}

func (r *Reactor[W]) less(other *Reactor[W]) bool {
	if c := compare(r.weight, other.weight); c != 0 {
		return c == +1
	}
	return r.seq < other.seq
}
