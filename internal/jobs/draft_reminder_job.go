package jobs

import (
	"context"
	"log/slog"
	"time"

	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DraftReminderJob periodically reports draft orders whose payment has been
// pending longer than the configured age. Drafts are saved "to pay later";
// this sweep is the operational follow-up that surfaces the ones the
// customer forgot.
type DraftReminderJob struct {
	handler  queries.GetStagedParcelsQueryHandler
	draftAge time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDraftReminderJob creates the reminder sweep. draftAge is how long a
// draft may sit before it is reported.
func NewDraftReminderJob(
	handler queries.GetStagedParcelsQueryHandler,
	draftAge time.Duration,
	logger *slog.Logger,
) *DraftReminderJob {
	return &DraftReminderJob{
		handler:  handler,
		draftAge: draftAge,
		cron:     cron.New(),
		logger:   logger.With("component", "draft_reminder_job"),
	}
}

// Start begins the reminder sweep, running at the top of every hour.
func (j *DraftReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		j.sweep(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Draft reminder job started (running hourly)")
	return nil
}

// Stop stops the reminder sweep.
func (j *DraftReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Draft reminder job stopped")
}

func (j *DraftReminderJob) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-j.draftAge)
	query, err := queries.NewGetStagedParcelsQuery(order.StatusDraft, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Draft reminder query construction failed", "error", err)
		return
	}

	drafts, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Draft reminder sweep failed", "error", err)
		return
	}

	if len(drafts) == 0 {
		return
	}

	j.logger.InfoContext(ctx, "Stale draft parcels found", "count", len(drafts), "olderThan", j.draftAge)
	for _, d := range drafts {
		j.logger.InfoContext(ctx, "Stale draft parcel",
			"id", d.ID,
			"title", d.Title,
			"createdBy", d.CreatedBy,
			"totalCost", d.TotalCost.String(),
			"createdAt", d.CreatedAt,
		)
	}
}
