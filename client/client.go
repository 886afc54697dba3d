package client

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/miracles123-max/echo-tutor/client/internal/api"
	"github.com/miracles123-max/echo-tutor/client/internal/job"
	"github.com/miracles123-max/echo-tutor/client/internal/keyqueue"
)

const requestIDHeader = "X-Request-Id"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the echo-tutor backend. Every network call returns a
// *Pending immediately and runs in the background. Calls on the same session
// run one at a time in the order they were made; calls on different sessions
// never wait for each other.
//
// Backend and network failures reject the handle with an error matching
// ErrTransport. A few failures never reach the network and do not match
// ErrTransport: ErrInvalidArgument for a fileId that is not a single path
// segment or an upload without content, ErrBackPressure when too many calls
// are queued for one session, ErrClosed after Close, and the caller's
// context error.
type Client struct {
	cfg  Config
	http *http.Client
	rest *resty.Client
	exec executor

	maxAttempts int

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client from cfg. Additional options can be provided via
// functional arguments; an invalid option panics.
func New(cfg Config, opts ...Option) *Client {
	cfg = cfg.withDefaults()
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.HTTPTimeout},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.exec == nil {
		c.exec = newDefaultExecutor(c.maxAttempts)
	}
	c.rest = newRestClient(c.http, cfg)
	return c
}

// NewDefault constructs a Client for DefaultConfig.
func NewDefault(opts ...Option) *Client {
	return New(DefaultConfig(), opts...)
}

// newRestClient points resty at the API base. Content types are set per
// request, so bodiless GETs carry none.
func newRestClient(hc *http.Client, cfg Config) *resty.Client {
	rc := resty.NewWithClient(hc).
		SetBaseURL(cfg.apiBaseURL()).
		SetLogger(restyLogger{})
	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(requestIDHeader) == "" {
			r.SetHeader(requestIDHeader, uuid.NewString())
		}
		return nil
	})
	return rc
}

// newDefaultExecutor builds the per-session executor from ECHO_TUTOR_QUEUE_*
// settings. maxAttempts, when set by WithRetries, wins over the environment.
func newDefaultExecutor(maxAttempts int) *keyqueue.Executor {
	qc, err := keyqueue.LoadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring invalid ECHO_TUTOR_QUEUE_* settings")
		qc = keyqueue.Config{}
	}
	if maxAttempts > 0 {
		qc.MaxAttempts = maxAttempts
	}
	qc.ErrorHandler = logCallFailure
	return keyqueue.New(qc)
}

// logCallFailure logs every call that settles with an error. Caller
// cancellations are routine and stay at debug level.
func logCallFailure(err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.Debug().Err(err).Msg("echo-tutor call canceled")
		return
	}
	log.Warn().Err(err).Int("status", StatusCode(err)).Msg("echo-tutor call failed")
}

// Close drains queued calls and stops the executor. Safe to call multiple
// times. Calls made after Close reject with ErrClosed.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// AwaitSession blocks until every call previously made for fileID has
// settled. It works by queueing a no-op job behind them and waiting for it.
func (c *Client) AwaitSession(ctx context.Context, fileID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	barrier := job.NewBarrier()
	if err := c.exec.Submit(ctx, fileID, barrier); err != nil {
		return err
	}
	return barrier.Wait(ctx)
}

// --------------------------------------------------------------------
// Upload - delegated to internal/api
// --------------------------------------------------------------------

// UploadFile sends req as multipart form data under field "file". The
// reader is consumed when the request runs, not before.
func (c *Client) UploadFile(ctx context.Context, req UploadRequest) *Pending {
	return api.UploadFile(ctx, c.exec, c.rest, req)
}

// UploadPath uploads the file at path under its base name.
func (c *Client) UploadPath(ctx context.Context, path string) *Pending {
	return api.UploadPath(ctx, c.exec, c.rest, path)
}

// --------------------------------------------------------------------
// Session operations - delegated to internal/api
// --------------------------------------------------------------------

// GetCurrentSection fetches the current section of the session fileID.
func (c *Client) GetCurrentSection(ctx context.Context, fileID string) *Pending {
	return api.GetCurrentSection(ctx, c.exec, c.rest, fileID)
}

// SubmitAnswer submits answer to questionID in the session fileID.
func (c *Client) SubmitAnswer(ctx context.Context, fileID string, questionID QuestionID, answer Answer) *Pending {
	return api.SubmitAnswer(ctx, c.exec, c.rest, fileID, questionID, answer)
}

// NextSection advances the session fileID.
func (c *Client) NextSection(ctx context.Context, fileID string) *Pending {
	return api.NextSection(ctx, c.exec, c.rest, fileID)
}

// --------------------------------------------------------------------
// Audio
// --------------------------------------------------------------------

// AudioURL returns the URL of a generated audio file. It makes no request
// and does not escape filename.
func (c *Client) AudioURL(filename string) string {
	return c.cfg.BaseURL + c.cfg.AudioPrefix + "/" + filename
}
