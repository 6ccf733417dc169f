package commands

import (
	"errors"

	"fleetyard/internal/pkg/guard"
)

var ErrRemindScheduledPickupsCommandIsNotConstructed = errors.New(
	"RemindScheduledPickupsCommand must be created via NewRemindScheduledPickupsCommand constructor",
)

// RemindScheduledPickupsCommand triggers reminder notifications for scheduled
// pickups whose window is about to open. Fired periodically by the reminder job.
type RemindScheduledPickupsCommand struct {
	guard guard.ConstructorGuard
}

// NewRemindScheduledPickupsCommand creates a parameterless reminder sweep command.
func NewRemindScheduledPickupsCommand() RemindScheduledPickupsCommand {
	return RemindScheduledPickupsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RemindScheduledPickupsCommand) Validate() error {
	return c.guard.Validate(ErrRemindScheduledPickupsCommandIsNotConstructed)
}
