package jobs

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// AggregateAuditJob periodically checks every containment unit's stored
// weight and parcel count against the parcels actually attached to it.
// Drift is reported through the log and never repaired automatically:
// the aggregates are maintained transactionally by the transfer path, so
// any mismatch means a defect that needs investigation, not a patch.
type AggregateAuditJob struct {
	handler queries.GetAggregateDriftQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAggregateAuditJob creates a new job for auditing unit aggregates.
func NewAggregateAuditJob(handler queries.GetAggregateDriftQueryHandler, logger *slog.Logger) *AggregateAuditJob {
	return &AggregateAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "aggregate_audit_job"),
	}
}

// Start begins the aggregate audit job to run every five minutes.
func (j *AggregateAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		drifted, err := j.handler.Handle(ctx, queries.NewGetAggregateDriftQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Aggregate audit job failed", "error", err)
			return
		}

		for _, d := range drifted {
			j.logger.WarnContext(ctx, "Unit aggregate drift detected",
				"unitKind", d.UnitKind,
				"unitID", d.UnitID.String(),
				"number", d.Number,
				"storedWeight", d.StoredWeight.String(),
				"actualWeight", d.ActualWeight.String(),
				"storedCount", d.StoredCount,
				"actualCount", d.ActualCount,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Aggregate audit job started (running every five minutes)")
	return nil
}

// Stop stops the aggregate audit job.
func (j *AggregateAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Aggregate audit job stopped")
}
