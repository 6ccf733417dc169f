package commands

import (
	"errors"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/pkg/guard"
)

var ErrApproveDeliveryCommandIsNotConstructed = errors.New(
	"ApproveDeliveryCommand must be created via NewApproveDeliveryCommand constructor",
)

// ApproveDeliveryCommand approves a delivery-to-address request. The request
// moves to Approved, not Scheduled: the client still has to accept the date
// and fee before the delivery is confirmed.
type ApproveDeliveryCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveDeliveryCommand creates a command to approve the given delivery request.
func NewApproveDeliveryCommand(requestID, actorID kernel.UUID) (ApproveDeliveryCommand, error) {
	cmd := ApproveDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setActorID(actorID),
	); err != nil {
		return ApproveDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrApproveDeliveryCommandIsNotConstructed)
}

// RequestID returns the identifier of the request to approve.
func (c ApproveDeliveryCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ActorID returns the approving admin's identifier, recorded for audit.
func (c ApproveDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ApproveDeliveryCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *ApproveDeliveryCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
