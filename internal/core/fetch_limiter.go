package core

// fetch_limiter.go bounds how many spreadsheet downloads run at once.
//
// Every session can trigger a fetch, so a burst of visitors would otherwise
// open one outbound connection each. Callers beyond the limit wait up to
// maxWait for a slot and then fail with ErrTooManyFetches.

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrTooManyFetches is returned when no fetch slot frees up within maxWait.
var ErrTooManyFetches = errors.New("too many concurrent sheet fetches")

const (
	// DefaultMaxConcurrentFetches is used when the configured limit is not positive.
	DefaultMaxConcurrentFetches = 8

	// DefaultFetchWait is used when the configured wait is not positive.
	DefaultFetchWait = 10 * time.Second
)

// FetchLimiter is a counting semaphore for outbound sheet fetches.
type FetchLimiter struct {
	slots   chan struct{}
	maxWait time.Duration
	active  atomic.Int64
}

// FetchLimiterStatus is a snapshot of the limiter for monitoring.
type FetchLimiterStatus struct {
	Active        int `json:"active"`
	Available     int `json:"available"`
	MaxConcurrent int `json:"maxConcurrent"`
}

// NewFetchLimiter creates a limiter allowing maxConcurrent simultaneous fetches.
func NewFetchLimiter(maxConcurrent int, maxWait time.Duration) *FetchLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentFetches
	}
	if maxWait <= 0 {
		maxWait = DefaultFetchWait
	}
	return &FetchLimiter{
		slots:   make(chan struct{}, maxConcurrent),
		maxWait: maxWait,
	}
}

// Acquire takes a slot. The caller must Release it when the fetch settles.
func (l *FetchLimiter) Acquire(ctx context.Context) error {
	timer := time.NewTimer(l.maxWait)
	defer timer.Stop()

	select {
	case l.slots <- struct{}{}:
		l.active.Add(1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrTooManyFetches
	}
}

// Release returns a slot taken by Acquire.
func (l *FetchLimiter) Release() {
	l.active.Add(-1)
	<-l.slots
}

// ActiveCount returns the number of fetches in flight.
func (l *FetchLimiter) ActiveCount() int {
	return int(l.active.Load())
}

// Status returns the current limiter state.
func (l *FetchLimiter) Status() FetchLimiterStatus {
	return FetchLimiterStatus{
		Active:        l.ActiveCount(),
		Available:     cap(l.slots) - len(l.slots),
		MaxConcurrent: cap(l.slots),
	}
}

// WaitForDrain blocks until no fetch is in flight or ctx is done.
// Used during shutdown.
func (l *FetchLimiter) WaitForDrain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if l.ActiveCount() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
