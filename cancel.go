package flux

// A Token is a node in a rooted cancellation tree.
//
// Cancelling a token logically cancels every token derived from it with
// [Token.Child]; cancelling a child never affects its parent.
// Cancellation is advisory and cooperative: a [Runner] checks its token at
// the start of every tick and, once cancelled, stops mutating the execution
// context and reports non-completion. Nothing is preempted.
//
// The engine is single-threaded, so tokens need no locking.
// All methods are safe on a nil Token, which reads as "never cancelled".
type Token struct {
	parent   *Token
	canceled bool
}

// NewToken creates a root [Token].
func NewToken() *Token {
	return new(Token)
}

// Cancel marks tk as cancelled. Cancel is idempotent.
func (tk *Token) Cancel() {
	if tk != nil {
		tk.canceled = true
	}
}

// Canceled reports whether tk or any of its ancestors has been cancelled.
func (tk *Token) Canceled() bool {
	for t := tk; t != nil; t = t.parent {
		if t.canceled {
			return true
		}
	}
	return false
}

// Child derives a new [Token] from tk.
// The child is cancelled transitively whenever tk is; cancelling the child
// leaves tk untouched.
func (tk *Token) Child() *Token {
	return &Token{parent: tk}
}
