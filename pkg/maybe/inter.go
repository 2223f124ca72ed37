package maybe

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithDiagnostic defines an interface for types that can return a value or a
// failure diagnostic
type WithDiagnostic[T any] interface {
	ValueProvider[T]
	// Diagnostic returns the failure description if validation failed
	Diagnostic() string
	// IsSuccess returns true if validation succeeded
	IsSuccess() bool
}
