package scan

import (
	"context"
	"time"

	"github.com/fwojciec/metacheck"
	"golang.org/x/time/rate"
)

var _ metacheck.Pacer = (*DelayPacer)(nil)

// DelayPacer spaces successive requests by a fixed delay using a token
// bucket with a burst of 1. The first Wait never blocks.
type DelayPacer struct {
	limiter *rate.Limiter
}

// NewDelayPacer creates a DelayPacer with the given inter-request delay.
// A zero or negative delay disables pacing.
func NewDelayPacer(delay time.Duration) *DelayPacer {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &DelayPacer{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the delay since the previous request has elapsed.
// Returns an error if ctx is canceled or its deadline would pass before
// the wait completes.
func (p *DelayPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
