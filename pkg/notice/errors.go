package notice

import "errors"

var (
	ErrNilRenderer     = errors.New("notice: renderer is nil")
	ErrInvalidQuantum  = errors.New("notice: tick quantum must be positive")
	ErrInvalidLifetime = errors.New("notice: default lifetime must not be negative")
	ErrAlreadyStarted  = errors.New("notice: scheduler already started")
	ErrNotStarted      = errors.New("notice: scheduler not started")
	ErrRendererPanic   = errors.New("notice: renderer panicked")
)
