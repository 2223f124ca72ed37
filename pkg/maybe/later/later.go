package later

import (
	"context"
	"fmt"

	"github.com/thonymg/maybe-zod/pkg/maybe"
	"github.com/thonymg/maybe-zod/pkg/maybe/pending"
)

// UnknownError is the fixed sentinel diagnostic for any failure while the
// input resolves or while the async validation runs. The original cause is
// discarded on purpose; callers that need it must inspect their own pending
// before handing it over.
const UnknownError = "Unknown error"

// Validator pairs a transformation with an async schema once and returns a
// closure that accepts a pending input and produces a pending result.
//
// Per invocation the steps are strictly sequential: the input settles first,
// then validation runs. One protective scope wraps exactly those two steps;
// a rejection, a context failure, or a panic inside it collapses to the
// UnknownError sentinel. A panicking engine is therefore indistinguishable
// from a rejected input — a known limitation, kept for compatibility.
//
// The transform runs outside that scope: a panic inside it rejects the
// output pending with the panic cause instead of coalescing to the sentinel,
// and a transform returning a *pending.Pending[V] is passed through
// unresolved as the value.
func Validator[T, U any](transform func(T) U,
	schema maybe.AsyncSchema[T]) func(ctx context.Context, input *pending.Pending[any]) *pending.Pending[maybe.Result[U]] {

	return func(ctx context.Context, input *pending.Pending[any]) *pending.Pending[maybe.Result[U]] {
		out, resolver := pending.New[maybe.Result[U]]()

		go func() {
			v, ok := settle(ctx, input, schema)
			if !ok {
				resolver.Resolve(maybe.Fail[U](UnknownError))
				return
			}
			if !v.OK {
				resolver.Resolve(maybe.FailFrom[U](v.Issues))
				return
			}
			transformInto(resolver, transform, v.Data)
		}()

		return out
	}
}

// transformInto runs the transform and resolves the output with its result.
// A panic here is a transform failure, not a resolution failure: the output
// pending is rejected with the cause so callers observe it through Await.
func transformInto[T, U any](resolver *pending.Resolver[maybe.Result[U]],
	transform func(T) U, data T) {

	defer func() {
		if rec := recover(); rec != nil {
			resolver.Reject(fmt.Errorf("later: transform panic: %v", rec))
		}
	}()

	resolver.Resolve(maybe.Success(transform(data)))
}

// settle awaits the input and validates it inside a single recover scope.
// Any failure in either step reports ok=false without detail.
func settle[T any](ctx context.Context, input *pending.Pending[any],
	schema maybe.AsyncSchema[T]) (v maybe.Verdict[T], ok bool) {

	defer func() {
		if rec := recover(); rec != nil {
			ok = false
		}
	}()

	raw, err := input.Await(ctx)
	if err != nil {
		return v, false
	}

	v, err = schema.SafeValidateAsync(ctx, raw).Await(ctx)
	if err != nil {
		return v, false
	}

	return v, true
}
