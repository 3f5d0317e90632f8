package jobs

import (
	"fmt"
	"log/slog"

	"fooddrone/internal/core/application/usecases/commands"
)

// JobManager coordinates the application's scheduled jobs.
type JobManager struct {
	droneMotionJob *DroneMotionJob
}

// NewJobManager creates a job manager wired to the motion sweep handler.
func NewJobManager(
	moveDronesHandler commands.MoveDronesCommandHandler,
	tickSeconds int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		droneMotionJob: NewDroneMotionJob(moveDronesHandler, tickSeconds, logger),
	}
}

// StartAll starts every scheduled job.
func (jm *JobManager) StartAll() error {
	if err := jm.droneMotionJob.Start(); err != nil {
		return fmt.Errorf("failed to start drone motion job: %w", err)
	}
	return nil
}

// StopAll stops every scheduled job gracefully.
func (jm *JobManager) StopAll() {
	jm.droneMotionJob.Stop()
}
