package avl

import "errors"

var (
	// ErrConcurrentModification signals that a tree was structurally modified
	// while a cursor created earlier was still advancing.
	ErrConcurrentModification = errors.New("avl: tree modified during iteration")
	// ErrInvariantViolation signals that a structural invariant check failed.
	ErrInvariantViolation = errors.New("avl: invariant violation")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("avl: index out of bounds")
)
