package commands

import (
	"context"
	"time"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"
	"fleetyard/internal/core/ports"
	"fleetyard/internal/pkg/errs"
)

// ApprovePickupCommandHandler schedules the latest pending pickup for a
// client+vehicle pair. The request moves to Scheduled with a concrete window,
// an audit event is recorded, the vehicle becomes "awaiting pickup", and the
// client is notified.
//
// The status write, event append, and vehicle update share one transaction;
// the notification is sent after the commit and its failure does not undo
// the committed transition.
type ApprovePickupCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewApprovePickupCommandHandler creates a handler for pickup approvals.
func NewApprovePickupCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) ApprovePickupCommandHandler {
	return ApprovePickupCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle approves the latest Requested pickup for the command's client+vehicle
// pair and returns the approved request's identifier.
//
// Fails with errs.ErrObjectNotFound when no pending pickup exists and with
// errs.ErrValueIsRequired when the request has no desired date to schedule into.
func (h ApprovePickupCommandHandler) Handle(ctx context.Context, cmd ApprovePickupCommand) (kernel.UUID, error) {
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

	req, err := uow.RequestRepository().FindLatestPickupRequested(ctx, cmd.ClientID(), cmd.VehicleID())
	if err != nil {
		return kernel.UUID{}, err
	}

	return approvePickupRequest(ctx, uow, h.notifier, req, cmd.ActorID())
}

// approvePickupRequest performs the shared scheduling flow for both pickup
// approval paths (by client+vehicle lookup and by request id). The unit of work
// must already be begun; the function commits it before notifying.
func approvePickupRequest(
	ctx context.Context,
	uow UoW,
	notifier ports.Notifier,
	req *request.Request,
	actorID kernel.UUID,
) (kernel.UUID, error) {
	dateStr := req.DesiredDateString()
	if dateStr == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("desiredDate")
	}

	window, err := request.MakeDefaultWindowFromDate(dateStr)
	if err != nil {
		return kernel.UUID{}, err
	}

	statusFrom := req.Status()
	if err = req.Schedule(window, time.Now().UTC()); err != nil {
		return kernel.UUID{}, err
	}

	repo := uow.RequestRepository()
	if err = repo.SchedulePickup(ctx, req); err != nil {
		return kernel.UUID{}, err
	}

	event, err := request.NewEvent(
		req.ID(), request.EventScheduled, statusFrom, req.Status(),
		actorID, request.RoleAdmin, nil)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = repo.AddEvent(ctx, event); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.VehicleRepository().SetStatus(ctx, req.VehicleID(), request.VehicleAwaitingPickup); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	// Best-effort: the transition is already committed, a failed send
	// surfaces to the caller without being rolled back.
	err = notifier.Send(ctx, req.ClientID(), ports.NotificationPickupApproved, map[string]any{
		"vehicleId":   req.VehicleID().String(),
		"requestId":   req.ID().String(),
		"windowStart": formatTimestamp(window.Start()),
		"windowEnd":   formatTimestamp(window.End()),
	})
	if err != nil {
		return req.ID(), err
	}

	return req.ID(), nil
}
