package commands

import (
	"errors"
	"time"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"
	"fleetyard/internal/pkg/errs"
	"fleetyard/internal/pkg/guard"
)

var ErrProposePickupDateCommandIsNotConstructed = errors.New(
	"ProposePickupDateCommand must be created via NewProposePickupDateCommand constructor",
)

// ProposePickupDateCommand proposes an alternate desired date for the latest
// still-open pickup request of a client+vehicle pair. Proposing a date does not
// change lifecycle status.
type ProposePickupDateCommand struct { //nolint:recvcheck //using for validation
	clientID     kernel.UUID
	vehicleID    kernel.UUID
	proposedDate time.Time
	actorID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewProposePickupDateCommand creates a reschedule proposal.
// proposedDate is an ISO calendar date ("2006-01-02").
func NewProposePickupDateCommand(
	clientID, vehicleID kernel.UUID, proposedDate string, actorID kernel.UUID,
) (ProposePickupDateCommand, error) {
	cmd := ProposePickupDateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setVehicleID(vehicleID),
		cmd.setProposedDate(proposedDate),
		cmd.setActorID(actorID),
	); err != nil {
		return ProposePickupDateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProposePickupDateCommand) Validate() error {
	return c.guard.Validate(ErrProposePickupDateCommandIsNotConstructed)
}

// ClientID returns the requesting client's identifier.
func (c ProposePickupDateCommand) ClientID() kernel.UUID {
	return c.clientID
}

// VehicleID returns the subject vehicle's identifier.
func (c ProposePickupDateCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// ProposedDate returns the proposed date at UTC midnight.
func (c ProposePickupDateCommand) ProposedDate() time.Time {
	return c.proposedDate
}

// ActorID returns the proposing admin's identifier, recorded for audit.
func (c ProposePickupDateCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ProposePickupDateCommand) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.clientID = id
	return nil
}

func (c *ProposePickupDateCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vehicleID = id
	return nil
}

func (c *ProposePickupDateCommand) setProposedDate(isoDate string) error {
	day, err := time.ParseInLocation(request.DateLayout, isoDate, time.UTC)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("proposedDate is invalid", err)
	}
	c.proposedDate = day
	return nil
}

func (c *ProposePickupDateCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
