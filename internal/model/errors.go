package model

import "errors"

// Error kinds returned by the engine. Callers match them with errors.Is;
// the engine wraps them with context but never retries or coerces.
var (
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrInvalidReleaseAmount = errors.New("release exceeds reserved quantity")
	ErrDuplicateAttribution = errors.New("request line already attributed")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrNotFound             = errors.New("not found")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrBusy                 = errors.New("system busy, please try again later")
)
