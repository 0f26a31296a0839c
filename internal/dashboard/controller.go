// Package dashboard owns the board state: the loaded incident collection, the
// filtered view, the current filter criteria, the freshness marker and the
// freshness poller. It ties the feed client, filter engine and presenter together.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ortelius/railwatch-board/internal/feed"
	"github.com/ortelius/railwatch-board/internal/filter"
	"github.com/ortelius/railwatch-board/internal/poller"
	"github.com/ortelius/railwatch-board/internal/presenter"
	"github.com/ortelius/railwatch-board/model"
	"github.com/ortelius/railwatch-board/util"
)

var (
	// ErrNoPoller is returned by TriggerCheck before the first successful load.
	ErrNoPoller = errors.New("no successful load yet")
	// ErrPollerStopped is returned by TriggerCheck after StopPoller.
	ErrPollerStopped = errors.New("freshness poller stopped")
)

// Publisher announces successful reloads to other systems
type Publisher interface {
	PublishFeedRefreshed(ctx context.Context, generatedAt string, total int) error
}

// State is a copy of the controller's state
type State struct {
	Incidents []model.Incident
	Filtered  []model.Incident
	Criteria  filter.Criteria
	Marker    string
	Loaded    bool
	LoadedAt  time.Time
}

// Config holds the controller dependencies. Fetcher and Sink are required.
type Config struct {
	Fetcher      feed.Fetcher
	Sink         presenter.Sink
	Engine       *filter.Engine
	Location     *time.Location
	PollInterval time.Duration
	Publisher    Publisher
	Metrics      *Metrics
	Logger       *zap.Logger
}

// Controller is the single owner of the board state. Fetches run without the
// state lock; every state change (load completion, criteria change) runs under
// it to completion, so readers never see a half applied update.
type Controller struct {
	fetcher   feed.Fetcher
	sink      presenter.Sink
	engine    *filter.Engine
	loc       *time.Location
	publisher Publisher
	metrics   *Metrics
	logger    *zap.Logger

	loadMu sync.Mutex // one full load at a time

	mu    sync.RWMutex
	state State

	pollerMu sync.Mutex
	poller   *poller.Poller
	started  bool // set on the first successful load, never cleared
	baseCtx  context.Context
	interval time.Duration
}

// NewController validates cfg and returns a controller with an empty dataset
func NewController(cfg Config) (*Controller, error) {
	if cfg.Fetcher == nil {
		return nil, fmt.Errorf("dashboard: fetcher is required")
	}
	if cfg.Sink == nil {
		return nil, fmt.Errorf("dashboard: sink is required")
	}
	if cfg.Engine == nil {
		cfg.Engine = filter.NewEngine(filter.Options{})
	}
	if cfg.Location == nil {
		loc, err := util.LoadDisplayZone("")
		if err != nil {
			return nil, err
		}
		cfg.Location = loc
	}
	if cfg.Metrics == nil {
		cfg.Metrics = NewMetrics(nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = poller.DefaultInterval
	}

	return &Controller{
		fetcher:   cfg.Fetcher,
		sink:      cfg.Sink,
		engine:    cfg.Engine,
		loc:       cfg.Location,
		publisher: cfg.Publisher,
		metrics:   cfg.Metrics,
		logger:    cfg.Logger,
		baseCtx:   context.Background(),
		interval:  cfg.PollInterval,
		state: State{
			Incidents: []model.Incident{},
			Filtered:  []model.Incident{},
		},
	}, nil
}

// Start performs the initial load. ctx also bounds the lifetime of the poller
// started after the first successful load. A failed initial load is reported
// on the board and returned; the service keeps running.
func (c *Controller) Start(ctx context.Context) error {
	c.pollerMu.Lock()
	c.baseCtx = ctx
	c.pollerMu.Unlock()

	return c.Load(ctx)
}

// Load fetches the feed and replaces the whole state. On failure the table body
// is replaced by the error row and the dataset is left as it was.
func (c *Controller) Load(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	f, err := c.fetcher.Fetch(ctx)
	if err != nil {
		c.metrics.Loads.WithLabelValues("failure").Inc()
		c.logger.Error("Error loading incident feed", zap.Error(err))
		presenter.RenderLoadError(c.sink)
		return fmt.Errorf("loading feed: %w", err)
	}

	incidents := f.Incidents()

	c.mu.Lock()
	c.state = State{
		Incidents: incidents,
		Filtered:  append([]model.Incident(nil), incidents...),
		Marker:    f.GeneratedAt,
		Loaded:    true,
		LoadedAt:  time.Now(),
	}
	if c.state.Filtered == nil {
		c.state.Filtered = []model.Incident{}
	}
	lastUpdate := presenter.RenderFreshness(f.GeneratedAt, c.loc, c.sink)
	presenter.Render(c.state.Filtered, c.sink)
	c.mu.Unlock()

	c.metrics.Loads.WithLabelValues("success").Inc()
	c.metrics.observeDataset(incidents)
	c.metrics.Filtered.Set(float64(len(incidents)))
	c.metrics.LastLoadEpoch.SetToCurrentTime()

	c.logger.Info("Incident feed loaded",
		zap.String("generated_at", f.GeneratedAt),
		zap.String("last_update", lastUpdate),
		zap.Int("incidents", len(incidents)))

	c.ensurePoller()

	if c.publisher != nil {
		if err := c.publisher.PublishFeedRefreshed(ctx, f.GeneratedAt, len(incidents)); err != nil {
			c.logger.Warn("Failed to publish feed refreshed event", zap.Error(err))
		}
	}
	return nil
}

// CheckFreshness fetches the feed only to compare its marker. When the marker
// differs from the last loaded one a full Load follows. The incident list of
// the check fetch is discarded. Failures leave the board untouched.
func (c *Controller) CheckFreshness(ctx context.Context) (bool, error) {
	f, err := c.fetcher.Fetch(ctx)
	if err != nil {
		c.metrics.Checks.WithLabelValues("failure").Inc()
		return false, fmt.Errorf("checking freshness: %w", err)
	}

	c.mu.RLock()
	current := c.state.Marker
	c.mu.RUnlock()

	if f.GeneratedAt == current {
		c.metrics.Checks.WithLabelValues("unchanged").Inc()
		c.logger.Debug("Incident feed unchanged", zap.String("generated_at", current))
		return false, nil
	}

	c.metrics.Checks.WithLabelValues("changed").Inc()
	c.logger.Info("New incident data detected, reloading",
		zap.String("previous", current),
		zap.String("generated_at", f.GeneratedAt))

	if err := c.Load(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// SetCriteria replaces the filter criteria, recomputes the filtered view from
// the full dataset and re-renders.
func (c *Controller) SetCriteria(criteria filter.Criteria) model.Counters {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Criteria = criteria
	c.state.Filtered = c.engine.Apply(c.state.Incidents, criteria)
	c.metrics.Filtered.Set(float64(len(c.state.Filtered)))
	return presenter.Render(c.state.Filtered, c.sink)
}

// View computes an ad-hoc filtered view without touching the shared criteria
func (c *Controller) View(criteria filter.Criteria) ([]model.Incident, model.Counters) {
	c.mu.RLock()
	incidents := c.state.Incidents
	c.mu.RUnlock()

	// incidents is replaced wholesale, never mutated, so reading it unlocked is safe
	view := c.engine.Apply(incidents, criteria)
	return view, presenter.Count(view)
}

// Criteria returns the current filter criteria
func (c *Controller) Criteria() filter.Criteria {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Criteria
}

// Marker returns the last loaded freshness marker
func (c *Controller) Marker() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Marker
}

// LastUpdate returns the marker formatted in the display zone
func (c *Controller) LastUpdate() string {
	return util.FormatMarker(c.Marker(), c.loc)
}

// Snapshot returns a copy of the state
func (c *Controller) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := c.state
	s.Incidents = append([]model.Incident(nil), c.state.Incidents...)
	s.Filtered = append([]model.Incident(nil), c.state.Filtered...)
	return s
}

// PollerStatus describes the freshness poller
type PollerStatus struct {
	Running  bool          `json:"running"`
	Interval time.Duration `json:"interval"`
	Ticks    int64         `json:"ticks"`
	Failures int64         `json:"failures"`
}

// PollerStatus reports whether the poller is active
func (c *Controller) PollerStatus() PollerStatus {
	c.pollerMu.Lock()
	p := c.poller
	c.pollerMu.Unlock()

	if p == nil {
		return PollerStatus{Interval: c.interval}
	}
	return PollerStatus{
		Running:  p.IsRunning(),
		Interval: p.Interval(),
		Ticks:    p.Ticks(),
		Failures: p.Failures(),
	}
}

// StopPoller cancels future freshness checks. A check already in flight still
// completes and applies its result. The poller is not re-armed by later loads.
// No-op when not running.
func (c *Controller) StopPoller() {
	c.pollerMu.Lock()
	defer c.pollerMu.Unlock()
	if c.poller != nil {
		c.poller.Stop()
	}
}

// TriggerCheck runs a freshness check now, serialized with the poller's ticks.
// Used by push notifications. It fails when no load succeeded yet or when the
// poller was stopped.
func (c *Controller) TriggerCheck(ctx context.Context) error {
	c.pollerMu.Lock()
	p := c.poller
	c.pollerMu.Unlock()

	if p == nil {
		return ErrNoPoller
	}
	if !p.IsRunning() {
		return ErrPollerStopped
	}
	return p.Tick(ctx)
}

// Close stops the poller
func (c *Controller) Close() {
	c.StopPoller()
}

// ensurePoller creates and starts the poller on the first successful load.
// Later loads leave it alone, so a stopped poller stays stopped.
func (c *Controller) ensurePoller() {
	c.pollerMu.Lock()
	defer c.pollerMu.Unlock()

	if c.started {
		return
	}
	c.started = true
	c.poller = poller.New(c.interval, c.pollCheck, c.logger.Named("poller"))
	if err := c.poller.Start(c.baseCtx); err != nil {
		c.logger.Warn("Failed to start freshness poller", zap.Error(err))
	}
}

func (c *Controller) pollCheck(ctx context.Context) error {
	_, err := c.CheckFreshness(ctx)
	return err
}
