package loan

import "errors"

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTransition = errors.New("invalid loan state transition")
	ErrInvalidAmount     = errors.New("loan amount must be positive")
	ErrInvalidTerm       = errors.New("loan term must be a positive number of months")
	ErrMissingReason     = errors.New("rejection reason is required")
	ErrInvalidStatus     = errors.New("unknown loan status")
	ErrLimitExceeded     = errors.New("requested amount exceeds available loan limit")
)
