package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lostfound/community-api/internal/core/ports"
)

// stubExpireRepo implements only the expiry slice of PostRepository.
type stubExpireRepo struct {
	ports.PostRepository

	mu      sync.Mutex
	cutoff  time.Time
	expired int64
	err     error
	calls   int
}

func (s *stubExpireRepo) ExpireOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.cutoff = cutoff
	return s.expired, s.err
}

func (s *stubExpireRepo) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestExpirer_SweepUsesMaxAgeCutoff(t *testing.T) {
	repo := &stubExpireRepo{expired: 2}
	maxAge := 30 * 24 * time.Hour
	e := NewExpirer(repo, maxAge, zerolog.Nop())

	before := time.Now().UTC().Add(-maxAge)
	e.sweep(context.Background())
	after := time.Now().UTC().Add(-maxAge)

	if repo.calls != 1 {
		t.Fatalf("expected one sweep, got %d", repo.calls)
	}
	if repo.cutoff.Before(before) || repo.cutoff.After(after) {
		t.Fatalf("cutoff %v outside [%v, %v]", repo.cutoff, before, after)
	}
}

func TestExpirer_SweepSurvivesRepoError(t *testing.T) {
	repo := &stubExpireRepo{err: errors.New("mongo down")}
	e := NewExpirer(repo, time.Hour, zerolog.Nop())

	// must not panic; the next tick retries
	e.sweep(context.Background())
	if repo.calls != 1 {
		t.Fatalf("expected one attempt, got %d", repo.calls)
	}
}

func TestExpirer_StartDisabledWithoutMaxAge(t *testing.T) {
	repo := &stubExpireRepo{}
	e := NewExpirer(repo, 0, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)

	time.Sleep(20 * time.Millisecond)
	if n := repo.callCount(); n != 0 {
		t.Fatalf("disabled expirer must never sweep, got %d calls", n)
	}
}

func TestExpirer_StartRunsInitialSweep(t *testing.T) {
	repo := &stubExpireRepo{}
	e := NewExpirer(repo, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	e.Start(ctx)

	deadline := time.After(time.Second)
	for repo.callCount() == 0 {
		select {
		case <-deadline:
			t.Fatalf("initial sweep never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
}
