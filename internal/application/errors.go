package application

import "errors"

var (
	// ErrNotFound is returned when the requested meeting or user does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrNoMeetings is returned when pattern analysis covers an empty window.
	ErrNoMeetings = errors.New("application: no meetings found for the specified period")
	// ErrNoValidMembers is returned when no requested participant resolves
	// to a known user. Individual unknown ids are skipped silently; only a
	// fully unresolvable request escalates.
	ErrNoValidMembers = errors.New("application: no valid team members found")
)

// ValidationError captures field level validation issues that callers can surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}
