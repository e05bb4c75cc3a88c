// Package jobs provides scheduled background tasks for the storefront
// order lifecycle service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order workflow.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Runs every minute to cancel orders that
// stayed in the created status past the configured TTL. Cancellations go
// through the regular transition path, so every cancelled order gets its
// status history ledger entry.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, ttl, orderMetrics, logger)
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
// A failed run is logged and retried on the next tick; the job never stops
// itself on a business error.
package jobs
