package flux

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"
)

type panicItem struct {
	reactor uuid.UUID
	value   any
	stack   []byte
}

// A TickPanic carries every panic that escaped a workflow during one
// scheduler pass, along with the identity of the reactor it came from
// and a stack trace. It is what [Scheduler.Tick] repanics with after
// the surviving reactors have been driven.
type TickPanic struct {
	items []panicItem
}

// Error implements the error interface.
func (p *TickPanic) Error() string {
	var b strings.Builder
	b.WriteString("flux: workflow panics:")
	for i, it := range p.items {
		fmt.Fprintf(&b, "\n(%d/%d) reactor %s panic: %v\n\n", i+1, len(p.items), it.reactor, it.value)
		b.Write(it.stack)
	}
	return b.String()
}

// Unwrap returns the panic values that are errors.
func (p *TickPanic) Unwrap() []error {
	var errs []error
	for _, it := range p.items {
		if err, ok := it.value.(error); ok {
			errs = append(errs, err)
		}
	}
	return errs
}

// catcher collects panics raised while driving reactors, so that one
// misbehaving workflow cannot starve the rest of the tick.
type catcher struct {
	items []panicItem
}

func (pc *catcher) try(reactor uuid.UUID, f func()) (ok bool) {
	defer func() {
		if !ok {
			v := recover()
			if v == nil {
				panic("flux: flux does not support runtime.Goexit()")
			}
			pc.items = append(pc.items, panicItem{reactor, v, debug.Stack()})
		}
	}()
	f()
	return true
}

func (pc *catcher) rethrow() {
	if len(pc.items) != 0 {
		panic(&TickPanic{items: pc.items})
	}
}
