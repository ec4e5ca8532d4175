package jobs

import (
	"fmt"
	"log/slog"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryRetryJob  *DeliveryRetryJob
	aggregateAuditJob *AggregateAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up job execution.
func NewJobManager(
	retryHandler commands.RetryFailedDeliveriesCommandHandler,
	driftHandler queries.GetAggregateDriftQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryRetryJob:  NewDeliveryRetryJob(retryHandler, logger),
		aggregateAuditJob: NewAggregateAuditJob(driftHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery retry job: %w", err)
	}

	if err := jm.aggregateAuditJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.deliveryRetryJob.Stop()
		return fmt.Errorf("failed to start aggregate audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.aggregateAuditJob.Stop()
	jm.deliveryRetryJob.Stop()
}
