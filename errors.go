package leverage

import "errors"

var (
	// ErrFormat reports an import file that is not a snapshot.
	ErrFormat = errors.New("invalid snapshot format")
	// ErrNotFound reports an unknown asset or liability id.
	ErrNotFound = errors.New("not found")
	// ErrInvalid reports a value out of its domain.
	ErrInvalid = errors.New("invalid value")
)
