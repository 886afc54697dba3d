package keyqueue

import (
	"errors"
	"fmt"
)

// ErrQueueFull reports transient back-pressure: too many jobs already wait
// for the key.
var ErrQueueFull = errors.New("key queue full")

// ErrExecutorClosed reports a permanent condition: the executor has been
// stopped and will accept no further work.
var ErrExecutorClosed = errors.New("key executor closed")

// ErrNilJob is returned by Submit for a nil Job.
var ErrNilJob = errors.New("nil job")

// QueueFullError carries diagnostics while satisfying errors.Is(_, ErrQueueFull).
type QueueFullError struct {
	Key      string
	Length   int // jobs waiting when Submit gave up
	Capacity int // Config.QueueSize
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("queue for %q full (len=%d cap=%d)", e.Key, e.Length, e.Capacity)
}

func (e *QueueFullError) Is(target error) bool { return target == ErrQueueFull }

// PanicError wraps a value recovered from a panicking Job.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return fmt.Sprintf("job panic: %v", e.Value) }
