package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/pkg/errs"
)

// RevenueSnapshotJob logs the running total of today's completed-order revenue.
// Runs hourly so the day's takings are visible in the logs without opening
// the back office.
type RevenueSnapshotJob struct {
	handler queries.GetDailyRevenueQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRevenueSnapshotJob creates a new job for hourly revenue snapshots.
// Uses GetDailyRevenueQueryHandler to compute the day's total.
func NewRevenueSnapshotJob(handler queries.GetDailyRevenueQueryHandler, logger *slog.Logger) *RevenueSnapshotJob {
	return &RevenueSnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "revenue_snapshot_job"),
	}
}

// Start begins the revenue snapshot job to run at the top of every hour.
func (j *RevenueSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetDailyRevenueQuery(time.Now())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Revenue snapshot job failed", "error", queryErr)
			return
		}

		revenue, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			// The store settings row is missing until first configuration
			if !errors.Is(handleErr, errs.ErrObjectNotFound) {
				j.logger.ErrorContext(ctx, "Revenue snapshot job failed", "error", handleErr)
			}
			return
		}

		j.logger.InfoContext(ctx, "Daily revenue snapshot",
			"day", revenue.Day.Format("2006-01-02"),
			"completed_orders", revenue.OrderCount,
			"total", revenue.Total.StringFixed(2),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Revenue snapshot job started (running hourly)")
	return nil
}

// Stop stops the revenue snapshot job.
func (j *RevenueSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Revenue snapshot job stopped")
}
