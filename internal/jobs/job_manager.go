package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"parcel/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	draftReminderJob *DraftReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	stagedParcelsHandler queries.GetStagedParcelsQueryHandler,
	draftAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		draftReminderJob: NewDraftReminderJob(stagedParcelsHandler, draftAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.draftReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start draft reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.draftReminderJob.Stop()
}
