package contract

import "errors"

var (
	// ErrInvalidParameter reports a contract or simulation parameter outside
	// its accepted domain. It is returned before any simulation work starts.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidState reports an inconsistency between pipeline stages, such
	// as a price matrix whose shape does not match the parameters it is
	// being evaluated against.
	ErrInvalidState = errors.New("invalid state")
)
