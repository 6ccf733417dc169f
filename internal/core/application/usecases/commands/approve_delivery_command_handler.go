package commands

import (
	"context"
	"fmt"

	"fleetyard/internal/core/domain/model/request"
	"fleetyard/internal/core/ports"
)

// ApproveDeliveryCommandHandler approves a delivery-to-address request.
// The aggregate enforces that the request is a delivery, has been priced with a
// positive fee, and carries a desired date. On success the vehicle is marked as
// awaiting the client's delivery approval and the client is notified.
type ApproveDeliveryCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewApproveDeliveryCommandHandler creates a handler for delivery approvals.
func NewApproveDeliveryCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) ApproveDeliveryCommandHandler {
	return ApproveDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle approves the addressed delivery request.
//
// Fails with errs.ErrObjectNotFound when the request does not exist, with
// errs.ErrValueIsInvalid for pickups or a non-positive fee, and with
// errs.ErrValueIsRequired when the fee or desired date was never set.
func (h ApproveDeliveryCommandHandler) Handle(ctx context.Context, cmd ApproveDeliveryCommand) error {
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
	if err = req.Approve(); err != nil {
		return err
	}

	if err = repo.UpdateStatus(ctx, req, statusFrom); err != nil {
		return err
	}

	// Date and fee go into the notes so the audit trail reads without joins.
	notes := fmt.Sprintf("Data desejada: %s, taxa: %.2f", req.DesiredDateString(), *req.FeeAmount())
	event, err := request.NewEvent(
		req.ID(), request.EventApproved, statusFrom, req.Status(),
		cmd.ActorID(), request.RoleAdmin, &notes)
	if err != nil {
		return err
	}
	if err = repo.AddEvent(ctx, event); err != nil {
		return err
	}

	if err = uow.VehicleRepository().SetStatus(
		ctx, req.VehicleID(), request.VehicleAwaitingDeliveryApproval); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.notifier.Send(ctx, req.ClientID(), ports.NotificationDeliveryPendingApproval, map[string]any{
		"vehicleId":   req.VehicleID().String(),
		"requestId":   req.ID().String(),
		"desiredDate": req.DesiredDateString(),
		"feeAmount":   *req.FeeAmount(),
	})
}
