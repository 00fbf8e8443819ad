package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// ExpressAlertJob surfaces express orders that are still being cleaned.
// Runs every minute so staff notice expedited work before it goes late.
type ExpressAlertJob struct {
	orders ports.OrderRepository
	cron   *cron.Cron
	logger *slog.Logger
}

// NewExpressAlertJob creates a new job for express order alerts.
// Reads orders directly from the repository without a transaction.
func NewExpressAlertJob(orders ports.OrderRepository, logger *slog.Logger) *ExpressAlertJob {
	return &ExpressAlertJob{
		orders: orders,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "express_alert_job"),
	}
}

// Start begins the express alert job to run every minute.
func (j *ExpressAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cleaning, handleErr := j.orders.GetAllInStatus(ctx, order.Cleaning)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Express alert job failed", "error", handleErr)
			return
		}

		for _, pending := range cleaning {
			if !pending.IsExpress() {
				continue
			}
			j.logger.WarnContext(ctx, "Express order still in cleaning",
				"order_id", pending.ID().String(),
				"customer_id", pending.CustomerID().String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Express alert job started (running every minute)")
	return nil
}

// Stop stops the express alert job.
func (j *ExpressAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Express alert job stopped")
}
