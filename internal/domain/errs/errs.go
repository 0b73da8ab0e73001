package errs

import "fmt"

// Typed domain errors shared by all workflow components. The transport
// layer matches these with errors.As and maps them to HTTP status codes;
// domain code never deals in status codes directly.

// ValidationError signals malformed or missing input. The caller can
// recover by correcting the input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// AuthorizationError signals that the actor lacks the role or ownership
// required for the operation.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string { return e.Reason }

// NotFoundError signals that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// PreconditionError signals that the entity exists but is in the wrong
// state for the requested operation. Current carries the state observed
// so the caller can react.
type PreconditionError struct {
	Reason  string
	Current string
}

func (e *PreconditionError) Error() string {
	if e.Current == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s (current state: %s)", e.Reason, e.Current)
}

// InvalidTransition is the workflow subtype of PreconditionError: the
// requested status change is not a legal edge from the current status.
type InvalidTransition struct {
	Current   string
	Requested string
}

func (e *InvalidTransition) Error() string {
	return fmt.Sprintf("invalid transition from %q to %q", e.Current, e.Requested)
}

// As lets errors.As(err, **PreconditionError) match an InvalidTransition,
// so callers that only care about "wrong state" handle both uniformly.
func (e *InvalidTransition) As(target any) bool {
	if p, ok := target.(**PreconditionError); ok {
		*p = &PreconditionError{Reason: e.Error(), Current: e.Current}
		return true
	}
	return false
}
