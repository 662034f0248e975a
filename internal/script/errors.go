package script

import "errors"

var (
	// ErrStateClosed is returned when running on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrInstructionLimit is returned when a script makes too many map calls.
	ErrInstructionLimit = errors.New("lua instruction limit exceeded")
)
