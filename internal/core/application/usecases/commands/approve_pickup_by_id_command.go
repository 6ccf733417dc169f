package commands

import (
	"errors"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/pkg/guard"
)

var ErrApprovePickupByIDCommandIsNotConstructed = errors.New(
	"ApprovePickupByIDCommand must be created via NewApprovePickupByIDCommand constructor",
)

// ApprovePickupByIDCommand approves a pickup request addressed directly by its
// identifier rather than by client+vehicle lookup.
type ApprovePickupByIDCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewApprovePickupByIDCommand creates a command to approve the given pickup request.
func NewApprovePickupByIDCommand(requestID, actorID kernel.UUID) (ApprovePickupByIDCommand, error) {
	cmd := ApprovePickupByIDCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setActorID(actorID),
	); err != nil {
		return ApprovePickupByIDCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApprovePickupByIDCommand) Validate() error {
	return c.guard.Validate(ErrApprovePickupByIDCommandIsNotConstructed)
}

// RequestID returns the identifier of the request to approve.
func (c ApprovePickupByIDCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ActorID returns the approving admin's identifier, recorded for audit.
func (c ApprovePickupByIDCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ApprovePickupByIDCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *ApprovePickupByIDCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
