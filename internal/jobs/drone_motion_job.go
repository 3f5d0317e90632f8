package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"fooddrone/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DroneMotionJob runs the fleet motion sweep on a fixed tick. The schedule
// is wrapped in SkipIfStillRunning: a sweep that outlasts its tick simply
// absorbs the next one instead of racing a second sweep over the same
// flights.
type DroneMotionJob struct {
	handler     commands.MoveDronesCommandHandler
	cron        *cron.Cron
	tickSeconds int
	logger      *slog.Logger
}

// NewDroneMotionJob creates the motion sweep job with the given tick.
func NewDroneMotionJob(
	handler commands.MoveDronesCommandHandler,
	tickSeconds int,
	logger *slog.Logger,
) *DroneMotionJob {
	return &DroneMotionJob{
		handler:     handler,
		cron:        cron.New(cron.WithSeconds()),
		tickSeconds: tickSeconds,
		logger:      logger.With("component", "drone_motion_job"),
	}
}

// Start schedules the sweep every tick.
func (j *DroneMotionJob) Start() error {
	spec := fmt.Sprintf("*/%d * * * * *", j.tickSeconds)

	chain := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger))
	_, err := j.cron.AddJob(spec, chain.Then(cron.FuncJob(func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewMoveDronesCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "drone motion sweep could not build its command", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "drone motion sweep failed", "error", handleErr)
		}
	})))
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("drone motion job started", "tickSeconds", j.tickSeconds)
	return nil
}

// Stop stops the sweep schedule.
func (j *DroneMotionJob) Stop() {
	j.cron.Stop()
	j.logger.Info("drone motion job stopped")
}
