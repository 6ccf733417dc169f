package commands

import (
	"errors"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand records that the vehicle reached the client: handed over
// at the yard for pickups, dropped at the address for deliveries.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command completing the given request.
func NewMarkDeliveredCommand(requestID, actorID kernel.UUID) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setActorID(actorID),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// RequestID returns the identifier of the completed request.
func (c MarkDeliveredCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ActorID returns the partner's identifier, recorded for audit.
func (c MarkDeliveredCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *MarkDeliveredCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *MarkDeliveredCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
