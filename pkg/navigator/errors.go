package navigator

import (
	"errors"
	"fmt"
)

// Sentinel errors for the navigation engine.
var (
	// ErrRouteNotFound indicates a requested destination name could not be
	// materialized. The stack is left untouched when this is returned.
	ErrRouteNotFound = errors.New("route not found")

	// ErrStaleTransition marks a transition completion that was superseded by
	// a newer transition on the same surface. It is never returned to callers.
	ErrStaleTransition = errors.New("stale transition")

	// ErrLayoutUnavailable indicates the controller has no session attached.
	// Calls hitting it are skipped, never fatal.
	ErrLayoutUnavailable = errors.New("layout context unavailable")
)

// RouteError reports a destination name that could not be materialized.
type RouteError struct {
	Name       string // Requested destination name
	Suggestion string // Closest known route, empty if none
	Err        error  // Underlying provider error, if any
}

func (e *RouteError) Error() string {
	msg := fmt.Sprintf("navigator: %s: %q", ErrRouteNotFound, e.Name)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	if e.Err != nil && !errors.Is(e.Err, ErrRouteNotFound) {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RouteError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRouteNotFound}
	}
	return []error{ErrRouteNotFound, e.Err}
}

// NewRouteError creates a RouteError for name.
func NewRouteError(name, suggestion string, err error) *RouteError {
	return &RouteError{Name: name, Suggestion: suggestion, Err: err}
}

// IsRouteNotFound checks if an error indicates an unknown destination.
func IsRouteNotFound(err error) bool {
	return errors.Is(err, ErrRouteNotFound)
}

// InfrastructureError represents a failure inside a collaborator backend
// (renderer, input device, config file) rather than in navigation logic.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_texture", "load_config")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navigator: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("navigator: %s", e.Op)
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
