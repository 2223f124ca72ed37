package maybe

import (
	"context"

	"github.com/thonymg/maybe-zod/pkg/maybe/pending"
)

// Verdict is the tagged outcome of a safe validation: either OK with the
// typed data, or a collection of issues. Issues may be empty when the engine
// reported a failure without any message.
type Verdict[T any] struct {
	OK     bool
	Data   T
	Issues Issues
}

// Pass builds a successful verdict.
func Pass[T any](data T) Verdict[T] {
	return Verdict[T]{OK: true, Data: data}
}

// Reject builds a failed verdict carrying the given issues.
func Reject[T any](iss Issues) Verdict[T] {
	return Verdict[T]{Issues: iss}
}

// Schema is the capability contract required of a validation engine.
// SafeValidate must never panic; all rule failures surface in the verdict.
type Schema[T any] interface {
	SafeValidate(ctx context.Context, input any) Verdict[T]
}

// AsyncSchema validates asynchronously. SafeValidateAsync must not panic
// while producing the pending verdict; async refinement failures surface as
// failed verdicts, not rejections.
type AsyncSchema[T any] interface {
	SafeValidateAsync(ctx context.Context, input any) *pending.Pending[Verdict[T]]
}

// SchemaFunc adapts a plain function to Schema.
type SchemaFunc[T any] func(ctx context.Context, input any) Verdict[T]

func (f SchemaFunc[T]) SafeValidate(ctx context.Context, input any) Verdict[T] {
	return f(ctx, input)
}

// SafeValidateAsync lifts the function over a pending verdict, so a
// SchemaFunc satisfies AsyncSchema as well.
func (f SchemaFunc[T]) SafeValidateAsync(ctx context.Context, input any) *pending.Pending[Verdict[T]] {
	return pending.Go(func() (Verdict[T], error) {
		return f(ctx, input), nil
	})
}
