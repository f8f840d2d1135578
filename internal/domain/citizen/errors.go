package citizen

import "errors"

var (
	// ErrInvalidInput indicates a nil or malformed person.
	ErrInvalidInput = errors.New("invalid citizen input")
	// ErrDuplicateID indicates a citizen with the same id is already registered.
	ErrDuplicateID = errors.New("citizen id already registered")
	// ErrNotFound indicates no citizen has the requested id.
	ErrNotFound = errors.New("citizen not found")
	// ErrUnknownOrder indicates an unsupported listing order.
	ErrUnknownOrder = errors.New("unknown listing order")
)
