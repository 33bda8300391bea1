package jobs

import (
	"fmt"

	"orders/internal/core/application/messaging"

	"go.uber.org/zap"
)

// JobManager coordinates the scheduled background jobs of the service and
// gives the composition root a single start/stop surface.
type JobManager struct {
	outboxDispatcherJob *OutboxDispatcherJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(dispatcher *messaging.Dispatcher, log *zap.Logger) *JobManager {
	return &JobManager{
		outboxDispatcherJob: NewOutboxDispatcherJob(dispatcher, log),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxDispatcherJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox dispatcher job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxDispatcherJob.Stop()
}
