// Package jobs provides scheduled background tasks for the food delivery
// system, implemented as cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxDispatchJob - Runs every second to publish committed domain events
// from the transactional outbox and confirm delivered ones.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(outboxRepo, dispatcher, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed event delivery is not an error of the job: the message stays
// unpublished and the next tick retries it. Only infrastructure failures
// (reading or updating the outbox table) are logged as errors.
package jobs
