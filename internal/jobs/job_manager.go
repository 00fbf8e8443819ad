package jobs

import (
	"fmt"
	"log/slog"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	revenueSnapshotJob *RevenueSnapshotJob
	expressAlertJob    *ExpressAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the revenue query handler and an order repository as dependencies.
func NewJobManager(
	dailyRevenueHandler queries.GetDailyRevenueQueryHandler,
	orders ports.OrderRepository,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		revenueSnapshotJob: NewRevenueSnapshotJob(dailyRevenueHandler, logger),
		expressAlertJob:    NewExpressAlertJob(orders, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.revenueSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start revenue snapshot job: %w", err)
	}

	if err := jm.expressAlertJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.revenueSnapshotJob.Stop()
		return fmt.Errorf("failed to start express alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.revenueSnapshotJob.Stop()
	jm.expressAlertJob.Stop()
}
