package job

import "context"

// Barrier is a no-op job. Once the executor settles it, every job queued
// before it under the same key has settled too.
type Barrier struct {
	fut *Future[struct{}]
}

// NewBarrier returns an unsettled Barrier.
func NewBarrier() *Barrier {
	return &Barrier{fut: NewFuture[struct{}]()}
}

func (b *Barrier) Run(context.Context) error { return nil }

// Settle implements keyqueue.Settler. A barrier dropped without running
// (canceled or executor stopped) reports why.
func (b *Barrier) Settle(err error) { b.fut.Resolve(struct{}{}, err) }

// Wait blocks until the barrier settles or ctx ends.
func (b *Barrier) Wait(ctx context.Context) error {
	_, err := b.fut.Await(ctx)
	return err
}
