package commands

import (
	"context"

	"fleetyard/internal/core/domain/model/request"
)

// MarkDeliveredCommandHandler completes a request from any non-terminal status.
// The vehicle's visible status and its timeline both receive the same label,
// chosen by request kind: "Veículo Retirado" for yard pickups,
// "Entregue ao Cliente" for deliveries.
//
// No notification is sent on completion.
type MarkDeliveredCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completions.
func NewMarkDeliveredCommandHandler(uowFactory UoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle completes the addressed request.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	statusFrom := req.Status()
	if err = req.Deliver(); err != nil {
		return err
	}

	if err = repo.UpdateStatus(ctx, req, statusFrom); err != nil {
		return err
	}

	event, err := request.NewEvent(
		req.ID(), request.EventDelivered, statusFrom, req.Status(),
		cmd.ActorID(), request.RolePartner, nil)
	if err != nil {
		return err
	}
	if err = repo.AddEvent(ctx, event); err != nil {
		return err
	}

	label := req.DeliveredLabel()
	if err = uow.Timeline().Append(ctx, req.VehicleID(), label, nil); err != nil {
		return err
	}
	if err = uow.VehicleRepository().SetStatus(ctx, req.VehicleID(), label); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
