package jobs

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// maxDeliveryAttempts caps retries per assignment. Assignments at or over the
// cap stay Failed until an operator intervenes.
const maxDeliveryAttempts = 3

// DeliveryRetryJob re-queues failed delivery assignments on a schedule.
// Runs every minute and re-dispatches every failed assignment that still has
// attempts left under the retry budget.
type DeliveryRetryJob struct {
	handler commands.RetryFailedDeliveriesCommandHandler
	actorID kernel.UUID
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryRetryJob creates a new job for retrying failed deliveries. The
// job acts under a synthetic system actor so that audit events it appends are
// distinguishable from operator actions.
func NewDeliveryRetryJob(handler commands.RetryFailedDeliveriesCommandHandler, logger *slog.Logger) *DeliveryRetryJob {
	return &DeliveryRetryJob{
		handler: handler,
		actorID: kernel.NewUUID(),
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_retry_job"),
	}
}

// Start begins the delivery retry job to run every minute.
func (j *DeliveryRetryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRetryFailedDeliveriesCommand(maxDeliveryAttempts, j.actorID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to construct delivery retry command", "error", err)
			return
		}

		requeued, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery retry job failed", "error", err)
			return
		}

		if requeued > 0 {
			j.logger.InfoContext(ctx, "Re-queued failed deliveries", "count", requeued)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery retry job started (running every minute)")
	return nil
}

// Stop stops the delivery retry job.
func (j *DeliveryRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery retry job stopped")
}
