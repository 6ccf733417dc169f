package commands

import (
	"context"
	"fmt"

	"fleetyard/internal/core/domain/model/request"
)

// ProposePickupDateCommandHandler replaces the desired date of the latest
// still-open pickup for a client+vehicle pair. The superseded date, when one
// existed, is preserved in the audit event's notes so the trail keeps the
// value the proposal overwrote.
//
// Unlike the approval paths, no notification is sent here; the reschedule is
// surfaced to the client through the request views instead.
type ProposePickupDateCommandHandler struct {
	uowFactory UoWFactory
}

// NewProposePickupDateCommandHandler creates a handler for reschedule proposals.
func NewProposePickupDateCommandHandler(uowFactory UoWFactory) ProposePickupDateCommandHandler {
	return ProposePickupDateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the proposal against the latest non-terminal pickup request
// for the command's client+vehicle pair.
//
// Fails with errs.ErrObjectNotFound when no open pickup exists.
func (h ProposePickupDateCommandHandler) Handle(ctx context.Context, cmd ProposePickupDateCommand) error {
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
	req, err := repo.FindLatestPickupForClientVehicle(ctx, cmd.ClientID(), cmd.VehicleID())
	if err != nil {
		return err
	}

	statusFrom := req.Status()
	prior, err := req.ProposeDate(cmd.ProposedDate())
	if err != nil {
		return err
	}

	if err = repo.ProposePickupDate(ctx, req); err != nil {
		return err
	}

	var notes *string
	if prior != nil {
		s := fmt.Sprintf("Data anterior: %s", prior.Format(request.DateLayout))
		notes = &s
	}

	event, err := request.NewEvent(
		req.ID(), request.EventRescheduleProposed, statusFrom, request.Requested,
		cmd.ActorID(), request.RoleAdmin, notes)
	if err != nil {
		return err
	}
	if err = repo.AddEvent(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
