package patientflow

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultPollInterval matches the refresh cadence the views rely on.
const DefaultPollInterval = 30 * time.Second

// tickerFactory returns a tick channel and its release func. Tests swap in a
// fake clock.
type tickerFactory func(interval time.Duration) (<-chan time.Time, func())

func realTicker(interval time.Duration) (<-chan time.Time, func()) {
	ticker := time.NewTicker(interval)
	return ticker.C, ticker.Stop
}

// Synchronizer polls the request list on a fixed interval and applies each
// full fetch to the store. Start acquires the ticker, Stop releases it; no
// ticks fire after Stop returns.
type Synchronizer struct {
	api       API
	store     *Store
	log       *zap.Logger
	interval  time.Duration
	newTicker tickerFactory

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

type SyncOption func(*Synchronizer)

func WithInterval(interval time.Duration) SyncOption {
	return func(s *Synchronizer) { s.interval = interval }
}

func NewSynchronizer(api API, store *Store, logger *zap.Logger, opts ...SyncOption) *Synchronizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	synchronizer := &Synchronizer{
		api:       api,
		store:     store,
		log:       logger,
		interval:  DefaultPollInterval,
		newTicker: realTicker,
	}
	for _, opt := range opts {
		opt(synchronizer)
	}
	return synchronizer
}

// Start begins polling. The first fetch fires immediately, then one per
// interval. Calling Start on a running synchronizer is a no-op.
func (s *Synchronizer) Start(ctx context.Context) {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	stop, done := s.stop, s.done
	s.mu.Unlock()

	go s.run(ctx, stop, done)
}

// Stop releases the ticker and waits until the polling goroutine has exited.
func (s *Synchronizer) Stop() {
	s.mu.Lock()
	if s.stop == nil {
		s.mu.Unlock()
		return
	}
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	close(stop)
	<-done
}

func (s *Synchronizer) run(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	tick, release := s.newTicker(s.interval)
	defer release()

	s.fetchOnce(ctx)

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-tick:
			s.fetchOnce(ctx)
		}
	}
}

// fetchOnce pulls the request list and applies it under the fetch's
// generation. Connection-class failures are logged, never surfaced; the next
// tick retries anyway.
func (s *Synchronizer) fetchOnce(ctx context.Context) {
	generation := s.store.BeginFetch()

	requests, err := s.api.ListRequests(ctx)
	if err != nil {
		var netErr *NetworkError
		if errors.As(err, &netErr) {
			s.log.Debug("poll tick skipped, connection unavailable",
				zap.Uint64("generation", generation),
				zap.Error(err),
			)
		} else {
			s.log.Error("poll tick failed",
				zap.Uint64("generation", generation),
				zap.Error(err),
			)
		}
		return
	}

	if !s.store.ApplyFetch(generation, AggregateRequests(requests)) {
		s.log.Debug("stale poll result dropped",
			zap.Uint64("generation", generation),
		)
	}
}
