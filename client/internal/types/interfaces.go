package types

import (
	"context"

	"github.com/miracles123-max/echo-tutor/client/internal/job"
	"github.com/miracles123-max/echo-tutor/client/internal/keyqueue"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// Executor runs request jobs, FIFO per key.
type Executor interface {
	Submit(context.Context, string, keyqueue.Job) error
}

// Pending is the handle every network call returns.
type Pending = job.Future[*Response]
