package jobs

import (
	"context"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StaleOrderCancellationJob cancels orders that stayed in the created status
// past the configured TTL. Runs every minute; each run goes through the
// regular transition path so cancelled orders get their ledger entries.
type StaleOrderCancellationJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	metrics *metrics.OrderMetrics
	logger  *zap.Logger
}

// NewStaleOrderCancellationJob creates a job that cancels unconfirmed orders
// older than ttl. orderMetrics may be nil.
func NewStaleOrderCancellationJob(
	handler commands.CancelStaleOrdersCommandHandler,
	ttl time.Duration,
	orderMetrics *metrics.OrderMetrics,
	logger *zap.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		metrics: orderMetrics,
		logger:  logger.With(zap.String("component", "stale_order_cancellation_job")),
	}
}

// Start begins the cancellation job, running once per minute.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStaleOrdersCommand(j.ttl)
		if cmdErr != nil {
			j.logger.Error("failed to build stale order command", zap.Error(cmdErr))
			return
		}

		cancelled, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.Error("stale order cancellation run failed", zap.Error(handleErr))
			return
		}

		j.metrics.AddStaleCancellations(cancelled)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("stale order cancellation job started",
		zap.Duration("ttl", j.ttl))
	return nil
}

// Stop stops the cancellation job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.Info("stale order cancellation job stopped")
}
