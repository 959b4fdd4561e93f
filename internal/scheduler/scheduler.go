// Package scheduler wires up the cron job that keeps the facet catalog warm.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/catalog"
)

// Scheduler wraps robfig/cron and manages the catalog refresh loop.
type Scheduler struct {
	cron    *cron.Cron
	catalog *catalog.Catalog
	spec    string // cron spec, e.g. "@every 6h"
}

// New creates a Scheduler that refreshes every intervalHours hours.
func New(cat *catalog.Catalog, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		catalog: cat,
		spec:    fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one refresh
// immediately so search filters are populated without waiting for the first
// tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runRefresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	slog.Info("catalog refresh cron started", "spec", s.spec)

	go s.runRefresh(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("catalog refresh cron stopped")
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	if err := s.catalog.Refresh(ctx); err != nil {
		slog.Error("catalog refresh failed", "err", err)
		return
	}
	slog.Info("catalog refreshed")
}
