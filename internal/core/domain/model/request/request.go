package request

import (
	"errors"
	"fmt"
	"time"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not created
// through one of the constructor functions.
var ErrRequestIsNotConstructed = errors.New(
	"Request must be created via NewPickupRequest, NewDeliveryRequest, or RestoreRequest")

// Vehicle status and timeline labels written as a request advances.
// These are the externally visible strings the rest of the product shows to
// clients, so they are part of the domain contract.
const (
	VehicleAwaitingPickup           = "Finalizado: Aguardando Retirada"
	VehicleAwaitingDeliveryApproval = "Finalizado: Aguardando Aprovação de Entrega"
	VehicleOutForDelivery           = "Saiu para Entrega"
	VehiclePickedUp                 = "Veículo Retirado"
	VehicleDeliveredToClient        = "Entregue ao Cliente"
)

// Request is the aggregate root for one pickup-or-delivery transaction.
//
// Invariants:
//   - id, vehicleID, clientID, and createdBy are valid UUIDs, immutable after creation
//   - kind == Delivery ⟺ addressID != nil; kind == Pickup ⟺ addressID == nil
//   - every request starts in Requested status; transitions follow Status rules
//   - the window and scheduledAt are set only when moving into Scheduled
//   - a delivery request needs a positive feeAmount and a desired date to be approved
//
// Terminal requests (delivered, canceled, rejected) are kept forever and never
// mutated again.
type Request struct {
	// id is the unique identifier, immutable.
	id kernel.UUID

	// vehicleID identifies the subject vehicle, immutable.
	vehicleID kernel.UUID

	// clientID identifies the requesting client, immutable.
	clientID kernel.UUID

	// serviceOrderID optionally links the request to a service order.
	serviceOrderID *kernel.UUID

	// addressID is nil for pickups and the delivery address for deliveries.
	addressID *kernel.UUID

	// kind discriminates pickup from delivery, derived from addressID.
	kind Kind

	// status is the current lifecycle state.
	status Status

	// desiredDate is the client/admin-proposed calendar date, date-only.
	desiredDate *time.Time

	// window holds the concrete scheduling timestamps once scheduled.
	window *Window

	// scheduledAt records when the scheduling action happened.
	scheduledAt *time.Time

	// feeAmount is the delivery fee; must be positive before approval.
	feeAmount *float64

	// createdBy is the actor who created the request.
	createdBy kernel.UUID

	// isConstructed ensures the request was created via a constructor.
	isConstructed bool
}

// NewPickupRequest creates a pickup-from-yard request in Requested status.
// serviceOrderID and desiredDate are optional; the desired date must be set
// (possibly later, via ProposeDate) before the pickup can be scheduled.
func NewPickupRequest(
	id, vehicleID, clientID kernel.UUID,
	serviceOrderID *kernel.UUID,
	desiredDate *time.Time,
	createdBy kernel.UUID,
) (*Request, error) {
	r := &Request{
		kind:          Pickup,
		status:        Requested,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setVehicleID(vehicleID),
		r.setClientID(clientID),
		r.setServiceOrderID(serviceOrderID),
		r.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	r.desiredDate = normalizeDate(desiredDate)
	return r, nil
}

// NewDeliveryRequest creates a delivery-to-address request in Requested status.
// The fee may be absent at creation; an external pricing step sets it before
// the request can be approved.
func NewDeliveryRequest(
	id, vehicleID, clientID kernel.UUID,
	serviceOrderID *kernel.UUID,
	addressID kernel.UUID,
	desiredDate *time.Time,
	feeAmount *float64,
	createdBy kernel.UUID,
) (*Request, error) {
	r := &Request{
		kind:          Delivery,
		status:        Requested,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setVehicleID(vehicleID),
		r.setClientID(clientID),
		r.setServiceOrderID(serviceOrderID),
		r.setAddressID(addressID),
		r.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	r.desiredDate = normalizeDate(desiredDate)
	r.feeAmount = feeAmount
	return r, nil
}

// RestoreRequest rebuilds an aggregate from persistence. The kind is derived
// from addressID presence and the status must be valid. Used only by repository
// implementations.
func RestoreRequest(
	id, vehicleID, clientID kernel.UUID,
	serviceOrderID, addressID *kernel.UUID,
	status Status,
	desiredDate *time.Time,
	window *Window,
	scheduledAt *time.Time,
	feeAmount *float64,
	createdBy kernel.UUID,
) (*Request, error) {
	kind := Pickup
	if addressID != nil {
		kind = Delivery
	}

	r := &Request{
		kind:          kind,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setVehicleID(vehicleID),
		r.setClientID(clientID),
		r.setServiceOrderID(serviceOrderID),
		r.setCreatedBy(createdBy),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if addressID != nil {
		if err := r.setAddressID(*addressID); err != nil {
			return nil, err
		}
	}
	if window != nil {
		if err := window.Validate(); err != nil {
			return nil, err
		}
		w := *window
		r.window = &w
	}

	r.status = status
	r.desiredDate = normalizeDate(desiredDate)
	r.scheduledAt = scheduledAt
	r.feeAmount = feeAmount
	return r, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares two requests by identifier.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// VehicleID returns the subject vehicle's identifier.
func (r *Request) VehicleID() kernel.UUID {
	return r.vehicleID
}

// ClientID returns the requesting client's identifier.
func (r *Request) ClientID() kernel.UUID {
	return r.clientID
}

// ServiceOrderID returns the linked service order, or nil.
func (r *Request) ServiceOrderID() *kernel.UUID {
	return r.serviceOrderID
}

// AddressID returns the delivery address, or nil for pickups.
func (r *Request) AddressID() *kernel.UUID {
	return r.addressID
}

// Kind returns Pickup or Delivery.
func (r *Request) Kind() Kind {
	return r.kind
}

// Status returns the current lifecycle state.
func (r *Request) Status() Status {
	return r.status
}

// DesiredDate returns the proposed calendar date, or nil.
func (r *Request) DesiredDate() *time.Time {
	return r.desiredDate
}

// DesiredDateString returns the desired date in "2006-01-02" form,
// or the empty string when no date is set.
func (r *Request) DesiredDateString() string {
	if r.desiredDate == nil {
		return ""
	}
	return r.desiredDate.Format(DateLayout)
}

// Window returns the scheduled window, or nil before scheduling.
func (r *Request) Window() *Window {
	return r.window
}

// ScheduledAt returns the scheduling timestamp, or nil.
func (r *Request) ScheduledAt() *time.Time {
	return r.scheduledAt
}

// FeeAmount returns the delivery fee, or nil when not yet priced.
func (r *Request) FeeAmount() *float64 {
	return r.feeAmount
}

// CreatedBy returns the actor who created the request.
func (r *Request) CreatedBy() kernel.UUID {
	return r.createdBy
}

// Schedule moves a pickup request into Scheduled with a concrete window.
//
// Business rules:
//   - only pickup requests can be scheduled directly; deliveries go through Approve
//   - a desired date must be set before scheduling
//   - only Requested requests can be scheduled
func (r *Request) Schedule(window Window, at time.Time) error {
	if r.kind != Pickup {
		return errs.NewValueIsInvalidErrorWithCause("request kind is invalid",
			fmt.Errorf("%s request cannot be scheduled via the pickup path", r.kind))
	}
	if r.desiredDate == nil {
		return errs.NewValueIsRequiredError("desiredDate")
	}
	if err := window.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Schedule()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.window = &window
	r.scheduledAt = &at
	return nil
}

// Approve moves a delivery request into Approved, pending client confirmation.
//
// Business rules:
//   - only delivery requests can be approved via this path
//   - the fee must have been set and be positive
//   - a desired date must be set
//   - only Requested requests can be approved
func (r *Request) Approve() error {
	if r.kind != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("request kind is invalid",
			fmt.Errorf("%s request cannot be approved via the delivery path", r.kind))
	}
	if r.feeAmount == nil {
		return errs.NewValueIsRequiredError("feeAmount")
	}
	if *r.feeAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("feeAmount is invalid",
			fmt.Errorf("%.2f is not greater than 0", *r.feeAmount))
	}
	if r.desiredDate == nil {
		return errs.NewValueIsRequiredError("desiredDate")
	}

	newStatus, err := r.status.Approve()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// StartTransit moves the request into InTransit.
// The caller is responsible for skipping pickups; in-transit has no meaning
// for a yard pickup.
func (r *Request) StartTransit() error {
	newStatus, err := r.status.StartTransit()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Deliver completes the request from any non-terminal status.
func (r *Request) Deliver() error {
	newStatus, err := r.status.Deliver()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// ProposeDate replaces the desired date of a still-open pickup request,
// returning the superseded date so callers can preserve it in the audit trail.
// The lifecycle status is left untouched.
func (r *Request) ProposeDate(proposed time.Time) (*time.Time, error) {
	if r.kind != Pickup {
		return nil, errs.NewValueIsInvalidErrorWithCause("request kind is invalid",
			fmt.Errorf("%s request cannot be rescheduled via the pickup path", r.kind))
	}
	if r.status.IsTerminal() {
		return nil, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is terminal and cannot be rescheduled", r.status))
	}

	prior := r.desiredDate
	r.desiredDate = normalizeDate(&proposed)
	return prior, nil
}

// DeliveredLabel returns the vehicle status/timeline label written when the
// request completes: one label for yard pickups, another for deliveries.
func (r *Request) DeliveredLabel() string {
	if r.kind == Pickup {
		return VehiclePickedUp
	}
	return VehicleDeliveredToClient
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.vehicleID = id
	return nil
}

func (r *Request) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.clientID = id
	return nil
}

func (r *Request) setServiceOrderID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	v := *id
	r.serviceOrderID = &v
	return nil
}

func (r *Request) setAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v := id
	r.addressID = &v
	return nil
}

func (r *Request) setCreatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.createdBy = id
	return nil
}

// normalizeDate strips the time-of-day component, anchoring the date at UTC midnight.
func normalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
