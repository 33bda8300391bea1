// Package jobs provides the scheduled background tasks of the service,
// implemented on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxDispatcherJob - Runs every second to drain pending outbox messages
// to the message broker.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatcher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatcher job uses the cron expression "* * * * * *" and runs every
// second, keeping publication latency low without coupling request handling
// to the broker. Retry pacing for individual messages is not the schedule's
// concern: the outbox rows carry their own backoff via next_attempt_at.
package jobs
