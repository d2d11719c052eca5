// Package scheduler runs the periodic catalog refresh and reminder sweep.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type catalogRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

type listingInvalidator interface {
	InvalidateListings(ctx context.Context) error
}

type reminderSweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// Config holds six-field cron specs. An empty spec disables that job.
type Config struct {
	CatalogRefreshSpec string
	ReminderSweepSpec  string
	JobTimeout         time.Duration
}

// Params groups the scheduler dependencies. Any job dependency may be nil.
type Params struct {
	Catalog  catalogRefresher
	Listings listingInvalidator
	Sweeper  reminderSweeper
	Logger   *zap.Logger
	Config   Config
}

// Scheduler wraps robfig/cron.
type Scheduler struct {
	cron     *cron.Cron
	catalog  catalogRefresher
	listings listingInvalidator
	sweeper  reminderSweeper
	logger   *zap.Logger
	cfg      Config

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// New constructs a scheduler with seconds precision.
func New(p Params) *Scheduler {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := p.Config
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = time.Minute
	}
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		catalog:  p.Catalog,
		listings: p.Listings,
		sweeper:  p.Sweeper,
		logger:   logger,
		cfg:      cfg,
	}
}

// Start registers the configured jobs and starts ticking.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return nil
	}

	if s.catalog != nil && s.cfg.CatalogRefreshSpec != "" {
		if _, err := s.cron.AddFunc(s.cfg.CatalogRefreshSpec, s.job("catalog_refresh", s.RefreshCatalog)); err != nil {
			return fmt.Errorf("schedule catalog refresh: %w", err)
		}
	}
	if s.sweeper != nil && s.cfg.ReminderSweepSpec != "" {
		if _, err := s.cron.AddFunc(s.cfg.ReminderSweepSpec, s.job("reminder_sweep", s.SweepReminders)); err != nil {
			return fmt.Errorf("schedule reminder sweep: %w", err)
		}
	}

	s.ctx, s.cancel = context.WithCancel(ctx)
	s.cron.Start()
	s.logger.Info("scheduler started", zap.Int("jobs", len(s.cron.Entries())))
	return nil
}

// Stop halts scheduling and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	done := s.cron.Stop()
	cancel()
	<-done.Done()
	s.logger.Info("scheduler stopped")
}

// RefreshCatalog reloads the catalog from its source and drops cached listings.
func (s *Scheduler) RefreshCatalog(ctx context.Context) error {
	if s.catalog == nil {
		return nil
	}
	size, err := s.catalog.Refresh(ctx)
	if err != nil {
		return err
	}
	if s.listings != nil {
		if err := s.listings.InvalidateListings(ctx); err != nil {
			s.logger.Warn("listing cache invalidation failed", zap.Error(err))
		}
	}
	s.logger.Info("catalog refreshed", zap.Int("scholarships", size))
	return nil
}

// SweepReminders enqueues due reminders.
func (s *Scheduler) SweepReminders(ctx context.Context) error {
	if s.sweeper == nil {
		return nil
	}
	queued, err := s.sweeper.Sweep(ctx)
	if err != nil {
		return err
	}
	if queued > 0 {
		s.logger.Info("reminders queued", zap.Int("count", queued))
	}
	return nil
}

func (s *Scheduler) job(name string, run func(context.Context) error) func() {
	return func() {
		s.mu.Lock()
		parent := s.ctx
		s.mu.Unlock()
		if parent == nil {
			return
		}
		ctx, cancel := context.WithTimeout(parent, s.cfg.JobTimeout)
		defer cancel()

		start := time.Now()
		if err := run(ctx); err != nil {
			s.logger.Error("scheduled job failed", zap.String("job", name), zap.Error(err))
			return
		}
		s.logger.Debug("scheduled job finished", zap.String("job", name), zap.Duration("duration", time.Since(start)))
	}
}
