// Package poller runs a check on a fixed period until stopped.
package poller

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
)

// DefaultInterval is the freshness check period
const DefaultInterval = 60 * time.Second

// ErrRunning is returned by Start when the poller already has an active timer
var ErrRunning = errors.New("poller already running")

// CheckFunc is invoked on every tick
type CheckFunc func(ctx context.Context) error

// Poller calls a CheckFunc every interval. Ticks never overlap: a tick that is
// still running delays the next one.
type Poller struct {
	interval time.Duration
	check    CheckFunc
	logger   *zap.Logger

	mu     sync.Mutex
	ticker *backoff.Ticker
	done   chan struct{}

	tickMu   sync.Mutex // serializes checks across restarts
	ticks    atomic.Int64
	failures atomic.Int64
}

// New creates a stopped poller
func New(interval time.Duration, check CheckFunc, logger *zap.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		interval: interval,
		check:    check,
		logger:   logger,
	}
}

// Interval returns the tick period
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Start begins ticking. The first check happens one interval after Start.
// Non-blocking. Cancelling ctx stops the poller as Stop does.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ticker != nil {
		return ErrRunning
	}

	ticker := backoff.NewTicker(backoff.WithContext(backoff.NewConstantBackOff(p.interval), ctx))
	done := make(chan struct{})
	p.ticker = ticker
	p.done = done

	go p.run(ctx, ticker, done)

	p.logger.Info("Freshness poller started", zap.Duration("interval", p.interval))
	return nil
}

// Stop cancels the timer and clears the handle. A check already in flight
// completes normally. Stopping a stopped poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ticker == nil {
		return
	}
	p.ticker.Stop()
	p.ticker = nil
	p.logger.Info("Freshness poller stopped")
}

// IsRunning returns whether a timer is active
func (p *Poller) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ticker != nil
}

// Done is closed when the current run loop exits. Nil if never started.
func (p *Poller) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// Ticks returns how many checks have run
func (p *Poller) Ticks() int64 {
	return p.ticks.Load()
}

// Failures returns how many checks returned an error
func (p *Poller) Failures() int64 {
	return p.failures.Load()
}

// Tick runs a single check synchronously (useful for testing and push triggers).
func (p *Poller) Tick(ctx context.Context) error {
	p.tickMu.Lock()
	defer p.tickMu.Unlock()

	p.ticks.Add(1)
	if err := p.check(ctx); err != nil {
		p.failures.Add(1)
		return err
	}
	return nil
}

func (p *Poller) run(ctx context.Context, ticker *backoff.Ticker, done chan struct{}) {
	defer close(done)

	// The backoff ticker fires immediately once; the first real check is one
	// interval later.
	first := true
	for range ticker.C {
		if first {
			first = false
			continue
		}
		// a tick can still be delivered after Stop; drop it
		if !p.owns(ticker) {
			break
		}
		if err := p.Tick(ctx); err != nil {
			p.logger.Warn("Freshness check failed", zap.Error(err))
		}
	}

	// Ticker channel closed by Stop or by ctx; clear the handle if it is still ours.
	p.mu.Lock()
	if p.ticker == ticker {
		p.ticker = nil
	}
	p.mu.Unlock()
}

func (p *Poller) owns(ticker *backoff.Ticker) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ticker == ticker
}
