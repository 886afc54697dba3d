package job

import (
	"context"
	"errors"
	"sync"
)

// ErrNilFunc is returned when a pending job has no function to run.
var ErrNilFunc = errors.New("nil job function")

// pendingJob runs fn on the executor and settles fut with the outcome of the
// last attempt.
type pendingJob[T any] struct {
	fn  func(context.Context) (T, error)
	fut *Future[T]

	mu   sync.Mutex
	last T
}

// NewPending wraps fn in a job whose result is delivered through the
// returned Future once the executor settles it.
func NewPending[T any](fn func(context.Context) (T, error)) (*Future[T], *pendingJob[T]) {
	fut := NewFuture[T]()
	return fut, &pendingJob[T]{fn: fn, fut: fut}
}

func (p *pendingJob[T]) Run(ctx context.Context) error {
	if p.fn == nil {
		return ErrNilFunc
	}
	v, err := p.fn(ctx)
	p.mu.Lock()
	p.last = v
	p.mu.Unlock()
	return err
}

// Settle implements keyqueue.Settler.
func (p *pendingJob[T]) Settle(err error) {
	if err != nil {
		var zero T
		p.fut.Resolve(zero, err)
		return
	}
	p.mu.Lock()
	v := p.last
	p.mu.Unlock()
	p.fut.Resolve(v, nil)
}
