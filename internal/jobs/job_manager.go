package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	batchImportJob *BatchImportJob
}

// NewJobManager creates a new job manager over the configured jobs.
func NewJobManager(batchImportJob *BatchImportJob) *JobManager {
	return &JobManager{
		batchImportJob: batchImportJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.batchImportJob.Start(); err != nil {
		return fmt.Errorf("failed to start batch import job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.batchImportJob.Stop()
}
