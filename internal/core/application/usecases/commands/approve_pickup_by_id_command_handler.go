package commands

import (
	"context"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/ports"
)

// ApprovePickupByIDCommandHandler schedules a pickup request addressed by id.
// Same flow as ApprovePickupCommandHandler, minus the client+vehicle lookup;
// a delivery request addressed through this path is rejected by the aggregate's
// kind guard.
type ApprovePickupByIDCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewApprovePickupByIDCommandHandler creates a handler for id-addressed pickup approvals.
func NewApprovePickupByIDCommandHandler(
	uowFactory UoWFactory, notifier ports.Notifier,
) ApprovePickupByIDCommandHandler {
	return ApprovePickupByIDCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle approves the addressed pickup request and returns its identifier.
//
// Fails with errs.ErrObjectNotFound when the request does not exist and with
// errs.ErrValueIsInvalid when it is a delivery request (wrong kind for this path).
func (h ApprovePickupByIDCommandHandler) Handle(
	ctx context.Context, cmd ApprovePickupByIDCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	req, err := uow.RequestRepository().GetByID(ctx, cmd.RequestID())
	if err != nil {
		return kernel.UUID{}, err
	}

	return approvePickupRequest(ctx, uow, h.notifier, req, cmd.ActorID())
}
