package service

import (
	"context"
	"time"
)

// Pacer spaces out successive calls to a rate-limited provider. The policy
// lives here, detached from slide ordering, so a concurrent enrichment pass
// could keep the provider-facing rate guarantee while relaxing sequencing.
type Pacer interface {
	// Wait blocks until the next call may proceed or the context ends.
	Wait(ctx context.Context) error
}

// IntervalPacer enforces a fixed delay between calls. The first call passes
// immediately; each later call waits out the interval.
type IntervalPacer struct {
	interval time.Duration
	started  bool
}

// NewIntervalPacer creates a pacer with the given inter-call delay. A
// non-positive interval disables pacing. IntervalPacer is not safe for
// concurrent use; each request gets its own.
func NewIntervalPacer(interval time.Duration) *IntervalPacer {
	return &IntervalPacer{interval: interval}
}

func (p *IntervalPacer) Wait(ctx context.Context) error {
	if !p.started {
		p.started = true
		return nil
	}
	if p.interval <= 0 {
		return nil
	}

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
