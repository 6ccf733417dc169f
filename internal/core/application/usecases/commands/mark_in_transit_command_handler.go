package commands

import (
	"context"

	"fleetyard/internal/core/domain/model/request"
)

// MarkInTransitCommandHandler moves a delivery request into InTransit and
// records "out for delivery" on the vehicle's timeline. For pickup requests the
// operation is a no-op: there is no transit leg when the client collects from
// the yard, so status, events, and timeline stay untouched.
//
// No notification is sent on this transition.
type MarkInTransitCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkInTransitCommandHandler creates a handler for in-transit transitions.
func NewMarkInTransitCommandHandler(uowFactory UoWFactory) MarkInTransitCommandHandler {
	return MarkInTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the addressed delivery request as in transit.
// Silently returns for pickup requests.
func (h MarkInTransitCommandHandler) Handle(ctx context.Context, cmd MarkInTransitCommand) error {
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

	repo := uow.RequestRepository()
	req, err := repo.GetByID(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if req.Kind() == request.Pickup {
		return nil
	}

	statusFrom := req.Status()
	if err = req.StartTransit(); err != nil {
		return err
	}

	if err = repo.UpdateStatus(ctx, req, statusFrom); err != nil {
		return err
	}

	event, err := request.NewEvent(
		req.ID(), request.EventInTransit, statusFrom, req.Status(),
		cmd.ActorID(), request.RolePartner, nil)
	if err != nil {
		return err
	}
	if err = repo.AddEvent(ctx, event); err != nil {
		return err
	}

	if err = uow.Timeline().Append(ctx, req.VehicleID(), request.VehicleOutForDelivery, nil); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
