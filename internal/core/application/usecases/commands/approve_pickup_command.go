package commands

import (
	"errors"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/pkg/guard"
)

var ErrApprovePickupCommandIsNotConstructed = errors.New(
	"ApprovePickupCommand must be created via NewApprovePickupCommand constructor",
)

// ApprovePickupCommand approves the latest pending pickup request for a
// client+vehicle pair, scheduling it into the default window on the client's
// desired date.
//
// Example:
//
//	cmd, err := NewApprovePickupCommand(clientID, vehicleID, adminID)
//	if err != nil {
//	    return err
//	}
//	handler := NewApprovePickupCommandHandler(uowFactory, notifier)
//	requestID, err := handler.Handle(ctx, cmd)
type ApprovePickupCommand struct { //nolint:recvcheck //using for validation
	clientID  kernel.UUID
	vehicleID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewApprovePickupCommand creates a command to approve a pending pickup.
// All three identifiers must be valid UUIDs.
func NewApprovePickupCommand(clientID, vehicleID, actorID kernel.UUID) (ApprovePickupCommand, error) {
	cmd := ApprovePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setVehicleID(vehicleID),
		cmd.setActorID(actorID),
	); err != nil {
		return ApprovePickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApprovePickupCommand) Validate() error {
	return c.guard.Validate(ErrApprovePickupCommandIsNotConstructed)
}

// ClientID returns the requesting client's identifier.
func (c ApprovePickupCommand) ClientID() kernel.UUID {
	return c.clientID
}

// VehicleID returns the subject vehicle's identifier.
func (c ApprovePickupCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// ActorID returns the approving admin's identifier, recorded for audit.
func (c ApprovePickupCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ApprovePickupCommand) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.clientID = id
	return nil
}

func (c *ApprovePickupCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vehicleID = id
	return nil
}

func (c *ApprovePickupCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
