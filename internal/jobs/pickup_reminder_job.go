package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fleetyard/internal/core/application/usecases/commands"
	"fleetyard/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// PickupReminderJob periodically sweeps scheduled pickups whose window is
// about to open and notifies their clients.
type PickupReminderJob struct {
	handler commands.RemindScheduledPickupsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPickupReminderJob creates a job that runs the reminder sweep every five minutes.
func NewPickupReminderJob(handler commands.RemindScheduledPickupsCommandHandler, logger *slog.Logger) *PickupReminderJob {
	return &PickupReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pickup_reminder_job"),
	}
}

// Start begins the reminder sweep on its five minute schedule.
func (j *PickupReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRemindScheduledPickupsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty sweep is normal; anything else indicates a problem.
			if !errors.Is(err, errs.ErrObjectNotFound) {
				j.logger.ErrorContext(ctx, "Pickup reminder job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup reminder job started (running every five minutes)")
	return nil
}

// Stop stops the reminder job.
func (j *PickupReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup reminder job stopped")
}
