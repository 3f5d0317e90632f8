// Package jobs provides the scheduled background tasks of the delivery
// system, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DroneMotionJob - Runs every simulation tick (5 seconds by default) to
// advance every active flight, persist drone telemetry, and publish the
// saga's pickup, delivering, and completion events.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(moveDronesHandler, tickSeconds, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The motion job's cron entry is wrapped in cron.SkipIfStillRunning, so a
// sweep that takes longer than one tick suppresses the next tick instead of
// running two sweeps over the same flights concurrently.
package jobs
