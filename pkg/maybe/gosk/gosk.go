package gosk

import (
	"context"

	goskema "github.com/reoring/goskema"

	"github.com/thonymg/maybe-zod/pkg/maybe"
	"github.com/thonymg/maybe-zod/pkg/maybe/pending"
)

// Schema adapts a goskema.Schema[T] to the maybe capability contracts.
// Parse errors never escape: issue-shaped failures keep their path, code and
// message; anything else becomes a single message-only issue.
type Schema[T any] struct {
	inner goskema.Schema[T]
}

func Wrap[T any](s goskema.Schema[T]) Schema[T] {
	return Schema[T]{inner: s}
}

func (s Schema[T]) SafeValidate(ctx context.Context, input any) maybe.Verdict[T] {
	v, err := s.inner.Parse(ctx, input)
	if err == nil {
		return maybe.Pass(v)
	}
	if iss, ok := goskema.AsIssues(err); ok {
		return maybe.Reject[T](convert(iss))
	}
	return maybe.Reject[T](maybe.IssuesFromError(err))
}

// SafeValidateAsync lifts SafeValidate over a pending verdict. A panicking
// engine surfaces as a rejection of the pending, not as a panic.
func (s Schema[T]) SafeValidateAsync(ctx context.Context, input any) *pending.Pending[maybe.Verdict[T]] {
	return pending.Go(func() (maybe.Verdict[T], error) {
		return s.SafeValidate(ctx, input), nil
	})
}

func convert(iss goskema.Issues) maybe.Issues {
	out := make(maybe.Issues, 0, len(iss))
	for _, it := range iss {
		out = append(out, maybe.Issue{
			Path:    it.Path,
			Code:    it.Code,
			Message: it.Message,
		})
	}
	return out
}
