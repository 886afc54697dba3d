package client

import (
	"context"

	"github.com/miracles123-max/echo-tutor/client/internal/keyqueue"
)

// executor abstracts the internal async job runner every call goes through.
type executor interface {
	Submit(context.Context, string, keyqueue.Job) error
	Stop()
}
