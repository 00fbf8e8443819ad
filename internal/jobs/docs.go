// Package jobs provides scheduled background tasks for the laundry back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic housekeeping the shop relies on.
//
// # Available Jobs
//
// 1. RevenueSnapshotJob - Runs hourly to log today's completed-order revenue
// 2. ExpressAlertJob - Runs every minute to flag express orders still being cleaned
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(dailyRevenueHandler, orderRepository, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The revenue snapshot job ignores the expected unconfigured-store case
// - The express alert job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
