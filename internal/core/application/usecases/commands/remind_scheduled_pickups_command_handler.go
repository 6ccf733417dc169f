package commands

import (
	"context"
	"time"

	"fleetyard/internal/core/ports"
)

// reminderLead is how far ahead of the window opening the reminder goes out.
const reminderLead = time.Hour

// RemindScheduledPickupsCommandHandler sends a pickup_reminder notification to
// the client of every scheduled pickup whose window opens within the next hour.
// Reminders carry no state change and append no events; deduplication across
// sweeps is the notification layer's concern.
type RemindScheduledPickupsCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewRemindScheduledPickupsCommandHandler creates a handler for reminder sweeps.
func NewRemindScheduledPickupsCommandHandler(
	uowFactory UoWFactory, notifier ports.Notifier,
) RemindScheduledPickupsCommandHandler {
	return RemindScheduledPickupsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle sweeps the upcoming windows and notifies each affected client.
// Returns the first notification error encountered after attempting all sends.
func (h RemindScheduledPickupsCommandHandler) Handle(
	ctx context.Context, cmd RemindScheduledPickupsCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	upcoming, err := uow.RequestRepository().GetScheduledPickupsStartingBetween(ctx, now, now.Add(reminderLead))
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	var firstErr error
	for _, req := range upcoming {
		window := req.Window()
		if window == nil {
			continue
		}

		sendErr := h.notifier.Send(ctx, req.ClientID(), ports.NotificationPickupReminder, map[string]any{
			"vehicleId":   req.VehicleID().String(),
			"requestId":   req.ID().String(),
			"windowStart": formatTimestamp(window.Start()),
		})
		if sendErr != nil && firstErr == nil {
			firstErr = sendErr
		}
	}

	return firstErr
}
