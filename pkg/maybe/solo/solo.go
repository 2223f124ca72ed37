package solo

import (
	"context"

	"github.com/thonymg/maybe-zod/pkg/maybe"
)

// Validator pairs a transformation with a schema once and returns a closure
// that validates each input synchronously.
//
// The schema's SafeValidate never panics; rule failures come back as the
// JSON-array diagnostic (or the empty diagnostic when the engine reported no
// message). A panic inside transform is not recovered here and propagates to
// the caller of the closure.
func Validator[T, U any](transform func(T) U,
	schema maybe.Schema[T]) func(ctx context.Context, input any) maybe.Result[U] {

	return func(ctx context.Context, input any) maybe.Result[U] {
		v := schema.SafeValidate(ctx, input)
		if v.OK {
			return maybe.Success(transform(v.Data))
		}
		return maybe.FailFrom[U](v.Issues)
	}
}

// Map transforms the successful value to a new value, carrying failures over
// unchanged.
func Map[In, Out any](input maybe.Result[In], onSuccess func(r In) Out) maybe.Result[Out] {
	if input.IsSuccess() {
		return maybe.Success(onSuccess(input.Value()))
	}
	if !input.HasDiagnostic() {
		return maybe.FailEmpty[Out]()
	}
	return maybe.Fail[Out](input.Diagnostic())
}

// Finally collapses a result to a final value via success/failure handlers.
func Finally[In, Out any](input maybe.Result[In],
	onSuccess func(r In) Out,
	onFailure func(diag string) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Diagnostic())
}
