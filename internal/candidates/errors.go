// Package candidates loads, normalizes and generates roommate candidate pools.
package candidates

import "fmt"

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NormalizationError represents a candidate pool that cannot be normalized
type NormalizationError struct {
	Message string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalization error: %s", e.Message)
}
