package maybe

import (
	"time"

	"github.com/google/uuid"
)

// Result is an error-or-value pair: it carries either a diagnostic string or
// a value of T, never both. The only exception is a failure built from an
// engine that reported no message at all, where the diagnostic stays empty
// but IsSuccess still returns false.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	diag      string
	isSuccess bool
	hasDiag   bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](diag string) Result[T] {
	return Result[T]{
		diag:      diag,
		isSuccess: false,
		hasDiag:   diag != "",
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailEmpty builds a failure without a diagnostic. It covers the case where
// the validation engine produced no message; no message is synthesized.
func FailEmpty[T any]() Result[T] {
	return Result[T]{
		isSuccess: false,
		hasDiag:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom builds a failure from validation issues, projecting them to the
// JSON-array diagnostic. An empty collection yields FailEmpty.
func FailFrom[T any](iss Issues) Result[T] {
	if len(iss) == 0 {
		return FailEmpty[T]()
	}
	return Fail[T](iss.String())
}

func (r Result[T]) Value() T {
	return r.value
}

// Diagnostic returns the failure description, empty on success.
func (r Result[T]) Diagnostic() string {
	return r.diag
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) HasValue() bool {
	return r.isSuccess
}

func (r Result[T]) HasDiagnostic() bool {
	return r.hasDiag
}

// Pair deconstructs the result into its ordered (diagnostic, value) form.
func (r Result[T]) Pair() (string, T) {
	return r.diag, r.value
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return !r.isSuccess && !r.hasDiag
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
