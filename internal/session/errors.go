package session

import "errors"

var (
	// ErrNotFound is returned when a session does not exist.
	ErrNotFound = errors.New("session not found")
	// ErrAlreadyBootstrapped guards against seeding a profile twice.
	ErrAlreadyBootstrapped = errors.New("session already bootstrapped")
	// ErrAlreadyAmplified guards against compounding amplification.
	ErrAlreadyAmplified = errors.New("session already amplified")
	// ErrInvalidInput wraps caller mistakes such as an unknown swipe direction.
	ErrInvalidInput = errors.New("invalid input")
)
