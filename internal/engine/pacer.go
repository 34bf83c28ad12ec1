package engine

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces outbound gateway calls. The sweep and the batch checker
// wait on it between calls; swapping the implementation changes pacing
// policy without touching the aggregation logic.
type Pacer interface {
	Wait(ctx context.Context) error
}

type tokenPacer struct {
	lim *rate.Limiter
}

func (p *tokenPacer) Wait(ctx context.Context) error {
	return p.lim.Wait(ctx)
}

type nopPacer struct{}

func (nopPacer) Wait(context.Context) error { return nil }

// NewPacer returns a token-paced Pacer emitting one call per delay.
// A non-positive delay disables pacing.
func NewPacer(delay time.Duration) Pacer {
	if delay <= 0 {
		return nopPacer{}
	}
	lim := rate.NewLimiter(rate.Every(delay), 1)
	// Drain the initial token so the very first Wait already spaces:
	// callers wait the full delay between consecutive calls.
	lim.Allow()
	return &tokenPacer{lim: lim}
}
