package iterator

import "errors"

var (
	// ErrInvalidPosition is the panic value of Key, Value and Entry when the
	// iterator is not positioned on an entry inside its bounds.
	ErrInvalidPosition = errors.New("iterator: not positioned on a valid entry")
	// ErrBoundsFrozen is the panic value of From, To and Prefix once the
	// first Next has been called.
	ErrBoundsFrozen = errors.New("iterator: bounds cannot change after iteration started")
	// ErrMoved is reported by an iterator whose cursor was handed over to
	// Reverse or to a projection view.
	ErrMoved = errors.New("iterator: cursor moved to another iterator")
)
