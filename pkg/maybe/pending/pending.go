package pending

import (
	"context"
	"fmt"
	"sync"
)

// Pending is the read side of a value that settles exactly once, either with
// a value or with a rejection error. The done channel close is the broadcast:
// every waiter unblocks at once.
type Pending[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

// Resolver is the write side. It can settle the associated pending only once;
// later calls are ignored.
type Resolver[T any] struct {
	p *Pending[T]
}

func New[T any]() (*Pending[T], *Resolver[T]) {
	p := &Pending[T]{done: make(chan struct{})}
	return p, &Resolver[T]{p: p}
}

func (r *Resolver[T]) settle(v T, err error) {
	r.p.once.Do(func() {
		r.p.value = v
		r.p.err = err
		close(r.p.done)
	})
}

func (r *Resolver[T]) Resolve(v T) {
	r.settle(v, nil)
}

func (r *Resolver[T]) Reject(err error) {
	var zero T
	r.settle(zero, err)
}

// Settle matches Go's (value, error) return pattern: a non-nil error rejects,
// otherwise the value resolves.
func (r *Resolver[T]) Settle(v T, err error) {
	if err != nil {
		r.Reject(err)
		return
	}
	r.Resolve(v)
}

// Of returns a pending already resolved with v.
func Of[T any](v T) *Pending[T] {
	p, r := New[T]()
	r.Resolve(v)
	return p
}

// Rejected returns a pending already rejected with err.
func Rejected[T any](err error) *Pending[T] {
	p, r := New[T]()
	r.Reject(err)
	return p
}

// Go runs f in a goroutine and settles the returned pending with its outcome.
// A panic inside f becomes a rejection instead of crashing the process.
func Go[T any](f func() (T, error)) *Pending[T] {
	p, r := New[T]()

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				r.Reject(fmt.Errorf("pending: recovered panic: %v", rec))
			}
		}()

		r.Settle(f())
	}()

	return p
}

// Done returns the channel closed once the pending settles.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the pending settles or ctx ends, whichever comes first.
func (p *Pending[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
