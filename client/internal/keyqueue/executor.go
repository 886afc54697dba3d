// Copyright 2025 The Synapse Authors.
//
// Package keyqueue runs jobs in FIFO order *per key*. Every key with work
// owns a lane served by its own goroutine, so a slow job only delays later
// jobs for the same key. Lanes disappear once they run dry.
package keyqueue

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/miracles123-max/echo-tutor/client/internal/errors"
)

type queuedJob struct {
	ctx context.Context
	job Job
}

type lane struct {
	key   string
	queue []queuedJob // waiting jobs; the running one is already popped
}

// Executor runs Jobs FIFO per key with no limit on how many keys run at
// once. Submit never blocks.
type Executor struct {
	cfg Config

	// mu guards lanes and closed. Accepting a job and shutting down both
	// happen under it, so every accepted job belongs to a running lane.
	mu     sync.Mutex
	lanes  map[string]*lane
	closed bool

	done chan struct{} // closed in Stop()
	wg   sync.WaitGroup
}

// New constructs an Executor. Zero-valued fields in cfg take the defaults.
func New(cfg Config) *Executor {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 100 * time.Millisecond
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 20 * time.Second
	}
	return &Executor{
		cfg:   cfg,
		lanes: make(map[string]*lane),
		done:  make(chan struct{}),
	}
}

// Submit queues job behind every job previously submitted for key.
//
//   - Returns nil once the job is accepted; it will then be settled exactly
//     once, even if Stop is called before it runs.
//   - Returns ErrExecutorClosed after Stop.
//   - Returns a *QueueFullError (matching ErrQueueFull) when QueueSize jobs
//     already wait for key.
//   - Returns ctx.Err() if ctx is already done.
func (e *Executor) Submit(ctx context.Context, key string, job Job) error {
	if job == nil {
		return ErrNilJob
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrExecutorClosed
	}

	l, ok := e.lanes[key]
	switch {
	case !ok:
		l = &lane{key: key}
		e.lanes[key] = l
		e.wg.Add(1)
		go e.runLane(l)
		activeLanes.Inc()
	case len(l.queue) >= e.cfg.QueueSize:
		queueFullTotal.Inc()
		return &QueueFullError{Key: key, Length: len(l.queue), Capacity: e.cfg.QueueSize}
	}
	l.queue = append(l.queue, queuedJob{ctx: ctx, job: job})
	submissionsTotal.Inc()
	queuedJobs.Inc()
	return nil
}

// Stop rejects further submissions, lets every lane finish what it already
// accepted (one attempt each, no further retries) and waits for them. It is
// idempotent and safe for concurrent use.
func (e *Executor) Stop() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	lanes := len(e.lanes)
	e.mu.Unlock()

	log.Debug().Int("lanes", lanes).Msg("keyqueue: stopping executor")

	close(e.done)
	e.wg.Wait()

	log.Debug().Msg("keyqueue: executor stopped, all lanes drained")
}

// Close lets Executor satisfy io.Closer.
func (e *Executor) Close() error {
	e.Stop()
	return nil
}

// ------------------------- internals -------------------------

func (e *Executor) runLane(l *lane) {
	defer e.wg.Done()
	for {
		qj, ok := e.next(l)
		if !ok {
			return
		}
		e.process(qj)
	}
}

// next pops the head of l, or retires l when it is empty.
func (e *Executor) next(l *lane) (queuedJob, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(l.queue) == 0 {
		delete(e.lanes, l.key)
		activeLanes.Dec()
		return queuedJob{}, false
	}
	qj := l.queue[0]
	l.queue[0] = queuedJob{}
	l.queue = l.queue[1:]
	queuedJobs.Dec()
	return qj, true
}

// process runs qj under the retry policy and settles it.
func (e *Executor) process(qj queuedJob) {
	// Honour caller context so a cancelled job doesn't hold up its lane.
	if err := qj.ctx.Err(); err != nil {
		e.finish(qj, err)
		return
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = e.cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = e.cfg.MaxInterval
	exp.Reset()

	for attempt := 1; ; attempt++ {
		start := time.Now()
		err := runSafely(qj)
		runDuration.Observe(time.Since(start).Seconds())

		if err == nil || isIrrecoverableError(err) || attempt >= e.cfg.MaxAttempts || e.stopping() {
			e.finish(qj, err)
			return
		}

		log.Debug().Err(err).Int("attempt", attempt).Msg("keyqueue: retrying job")

		timer := time.NewTimer(exp.NextBackOff())
		select {
		case <-timer.C:
		case <-e.done:
			timer.Stop()
			e.finish(qj, err)
			return
		case <-qj.ctx.Done():
			timer.Stop()
			e.finish(qj, qj.ctx.Err())
			return
		}
	}
}

func (e *Executor) stopping() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// finish reports the terminal outcome of a job to the job itself and to the
// error handler.
func (e *Executor) finish(qj queuedJob, err error) {
	if s, ok := qj.job.(Settler); ok {
		s.Settle(err)
	}
	e.safeHandleError(err)
}

// runSafely converts a panicking job into a *PanicError so the lane survives.
func runSafely(qj queuedJob) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("keyqueue: job panic")
			err = &PanicError{Value: r}
		}
	}()
	return qj.job.Run(qj.ctx)
}

func (e *Executor) safeHandleError(err error) {
	if err == nil || e.cfg.ErrorHandler == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("keyqueue: error handler panic")
		}
	}()
	e.cfg.ErrorHandler(err)
}

// isIrrecoverableError reports whether another attempt is pointless: a
// panic, an error wrapped with backoff.Permanent, or a classified
// irrecoverable failure.
func isIrrecoverableError(err error) bool {
	if _, ok := err.(*PanicError); ok {
		return true
	}
	var perm *backoff.PermanentError
	if stderrors.As(err, &perm) {
		return true
	}
	return errors.IsIrrecoverable(err)
}
