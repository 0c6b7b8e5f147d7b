package flux

// Unit is the empty value, for actions that take no input or produce no
// meaningful output.
type Unit struct{}

// An Output is a single-slot result cell shared by exactly two parties:
// the [Runner] that eventually writes into it, and the waiter that consumes
// the value once the runner reports finished.
//
// An Output must be shared by pointer. Combinators that rebind a child
// runner must give it a fresh slot; a slot is never implicitly cleared
// between activations.
type Output[T any] struct {
	v *T
}

// NewOutput creates an empty [Output].
func NewOutput[T any]() *Output[T] {
	return new(Output[T])
}

// Set stores v, overwriting any value not yet consumed.
func (o *Output[T]) Set(v T) {
	o.v = &v
}

// Take consumes the stored value, if any.
// After Take reports true, the slot is empty again; a waiter can never
// observe a value it has already consumed.
func (o *Output[T]) Take() (T, bool) {
	if o.v == nil {
		var zero T
		return zero, false
	}
	v := *o.v
	o.v = nil
	return v, true
}

// Ready reports whether a value is stored.
func (o *Output[T]) Ready() bool {
	return o.v != nil
}
