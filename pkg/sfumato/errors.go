package sfumato

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNotFound indicates a registry lookup for a name that was never
	// registered. Callers typically fall back to Identity().
	ErrNotFound = errors.New("transition not found")

	// ErrInvalidArgument indicates a constructor was given a value
	// outside its domain. This is a caller programming error, never a
	// transient condition.
	ErrInvalidArgument = errors.New("invalid argument")
)

// InvalidArgumentError reports which operation rejected its input and
// why. It unwraps to ErrInvalidArgument.
type InvalidArgumentError struct {
	Op     string // Operation that rejected the input (e.g., "scale")
	Reason string // Why the input was rejected
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("sfumato: %s: %s", e.Op, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// IsNotFound checks if an error indicates a missing registry entry.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidArgument checks if an error indicates a rejected input.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
