package flux

// A State is a value cell a host embeds in its execution context so that
// runners can observe it tick by tick.
//
// A State must not be shared by more than one scheduler thread; like
// everything else in this package, it relies on the engine's strict
// single-threaded access.
type State[T any] struct {
	value T
}

// NewState creates a new [State] with its initial value set to v.
func NewState[T any](v T) *State[T] {
	return &State[T]{value: v}
}

// Get retrieves the value of s.
func (s *State[T]) Get() T {
	return s.value
}

// Set updates the value of s.
func (s *State[T]) Set(v T) {
	s.value = v
}

// Update sets the value of s to f(s.Get()).
func (s *State[T]) Update(f func(v T) T) {
	s.value = f(s.value)
}

// WaitState yields a unit of work that finishes once the value read from
// the execution context equals the bound expectation.
func WaitState[W any, S comparable](get func(w W) S) Seed[W, S, Unit] {
	if get == nil {
		panic("flux: nil state accessor")
	}
	return WaitUntilWith(func(w W, expect S) bool { return get(w) == expect })
}
