package watch

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler triggers report regeneration on a cron schedule, independent of
// file changes. Useful when the export lives on a share whose change events
// are unreliable.
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewScheduler creates a scheduler for the given cron expression. An empty
// expression yields a scheduler that does nothing.
func NewScheduler(schedule string, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "schedule"),
	}
}

// Start validates the expression and begins firing run at each tick.
//
// Common expressions:
//   - "0 6 * * *"   - daily at 6 AM
//   - "*/30 * * * *" - every 30 minutes
func (s *Scheduler) Start(run func()) error {
	if s.schedule == "" {
		s.logger.Debug("no schedule configured")
		return nil
	}

	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	if _, err := s.cron.AddFunc(s.schedule, func() {
		s.logger.Info("scheduled regeneration", "schedule", s.schedule)
		run()
	}); err != nil {
		return fmt.Errorf("add cron job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("schedule started", "schedule", s.schedule)
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
