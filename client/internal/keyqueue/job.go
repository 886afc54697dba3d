package keyqueue

import "context"

// Job is a unit of work executed by an Executor. With retries enabled Run
// may be called more than once.
type Job interface {
	Run(ctx context.Context) error
}

// Settler is implemented by jobs that want their terminal outcome. The
// executor calls Settle exactly once for every accepted job: after the last
// attempt, or with the reason the job was dropped without running.
type Settler interface {
	Settle(err error)
}

// JobFunc adapts a function to a Job.
type JobFunc func(ctx context.Context) error

// Run implements Job for JobFunc.
func (f JobFunc) Run(ctx context.Context) error { return f(ctx) }
