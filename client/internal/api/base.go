package api

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	sdkerrors "github.com/miracles123-max/echo-tutor/client/internal/errors"
	"github.com/miracles123-max/echo-tutor/client/internal/job"
	"github.com/miracles123-max/echo-tutor/client/internal/types"
)

// Operation names, used as metric labels and error prefixes.
const (
	OpUpload         = "upload"
	OpCurrentSection = "current section"
	OpSubmitAnswer   = "submit answer"
	OpNextSection    = "next section"
)

// dispatch hands send to the executor under key and returns the pending
// result. Nothing is returned synchronously: validation, enqueue and
// transport failures all reject the handle.
func dispatch(ctx context.Context, exec types.Executor, key, op string, send func(context.Context) (*types.Response, error)) *types.Pending {
	if err := ctx.Err(); err != nil {
		return rejected(op, err)
	}
	fut, j := job.NewPending(func(jobCtx context.Context) (*types.Response, error) {
		resp, err := send(jobCtx)
		observe(op, err)
		return resp, err
	})
	if err := exec.Submit(ctx, key, j); err != nil {
		enqueueFailuresTotal.WithLabelValues(job.KeyBucket(key)).Inc()
		log.Warn().Err(err).Str("operation", op).Str("key", key).Msg("request not enqueued")
		fut.Resolve(nil, err)
	}
	return fut
}

// rejected returns a handle that already failed before reaching the executor.
func rejected(op string, err error) *types.Pending {
	requestsTotal.WithLabelValues(op, "rejected").Inc()
	return job.Failed[*types.Response](err)
}

// result turns a resty outcome into the pass-through Response or a
// transport failure.
func result(op string, resp *resty.Response, err error) (*types.Response, error) {
	if err != nil {
		return nil, sdkerrors.NewNetworkError(op, err)
	}
	if !resp.IsSuccess() {
		return nil, sdkerrors.NewHTTPError(resp.StatusCode(), resp.String(), op)
	}
	return &types.Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
