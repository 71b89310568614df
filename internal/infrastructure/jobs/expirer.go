// Package jobs hosts the background maintenance work of the service.
package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lostfound/community-api/internal/core/ports"
)

const sweepInterval = time.Hour

// Expirer periodically flips stale active posts to expired.
type Expirer struct {
	repo   ports.PostRepository
	maxAge time.Duration
	log    zerolog.Logger
}

// NewExpirer creates an Expirer marking active posts older than maxAge.
func NewExpirer(repo ports.PostRepository, maxAge time.Duration, log zerolog.Logger) *Expirer {
	return &Expirer{repo: repo, maxAge: maxAge, log: log}
}

// Start launches the sweep loop. It runs one sweep immediately, then hourly,
// and stops when ctx is cancelled. A non-positive maxAge disables the job.
func (e *Expirer) Start(ctx context.Context) {
	if e.maxAge <= 0 {
		return
	}
	go e.run(ctx)
}

func (e *Expirer) run(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	e.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.sweep(ctx)
		}
	}
}

func (e *Expirer) sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-e.maxAge)
	n, err := e.repo.ExpireOlderThan(ctx, cutoff)
	if err != nil {
		e.log.Error().Err(err).Msg("post expiry sweep failed")
		return
	}
	if n > 0 {
		e.log.Info().Int64("expired", n).Time("cutoff", cutoff).Msg("posts expired")
	}
}
