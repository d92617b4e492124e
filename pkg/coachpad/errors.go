package coachpad

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user cancelled an operation (pressed back,
	// dismissed a dialog). This is normal flow control, not a failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrQuit indicates the user asked to leave the app (window close or an
	// unhandled back event at the top of the flow).
	ErrQuit = errors.New("application quit requested")
)

// InfrastructureError represents a framework-level error: rendering failed,
// a font is missing, a device could not be opened. These are conditions the
// screens themselves cannot recover from.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "render", "open_device")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("coachpad: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("coachpad: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsQuit checks if an error indicates a quit request.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
