// Package jobs provides scheduled background tasks for the parcel service.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and are managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(stagedParcelsHandler, 24*time.Hour, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is DraftReminderJob, an hourly sweep that logs draft
// orders whose payment has been pending longer than the configured age.
// Sweep failures are logged and retried on the next tick; the job never
// stops itself.
package jobs
