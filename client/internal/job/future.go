package job

import (
	"context"
	"sync"
)

// Future is a handle to a result that is produced later. The first call to
// Resolve wins; later calls are ignored.
type Future[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

// NewFuture returns an unresolved Future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Failed returns a Future already rejected with err.
func Failed[T any](err error) *Future[T] {
	f := NewFuture[T]()
	var zero T
	f.Resolve(zero, err)
	return f
}

// Resolve settles the Future. It reports whether this call did so.
func (f *Future[T]) Resolve(v T, err error) bool {
	resolved := false
	f.once.Do(func() {
		f.val, f.err = v, err
		close(f.done)
		resolved = true
	})
	return resolved
}

// Done is closed once the Future is settled.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Await blocks until the Future settles or ctx ends. A ctx error leaves the
// Future itself untouched.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result blocks until the Future settles.
func (f *Future[T]) Result() (T, error) {
	<-f.done
	return f.val, f.err
}
