package commands

import (
	"errors"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/pkg/guard"
)

var ErrMarkInTransitCommandIsNotConstructed = errors.New(
	"MarkInTransitCommand must be created via NewMarkInTransitCommand constructor",
)

// MarkInTransitCommand records that a partner left for the client's address
// with the vehicle. Meaningless for yard pickups, which the handler skips.
type MarkInTransitCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkInTransitCommand creates a command marking the given request in transit.
func NewMarkInTransitCommand(requestID, actorID kernel.UUID) (MarkInTransitCommand, error) {
	cmd := MarkInTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setActorID(actorID),
	); err != nil {
		return MarkInTransitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkInTransitCommandIsNotConstructed)
}

// RequestID returns the identifier of the request in transit.
func (c MarkInTransitCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ActorID returns the partner's identifier, recorded for audit.
func (c MarkInTransitCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *MarkInTransitCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *MarkInTransitCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
