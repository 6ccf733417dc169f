package ports

import (
	"context"
	"time"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for delivery/collection
// request aggregates and their audit events.
//
// The write methods that move a request between statuses (SchedulePickup,
// UpdateStatus, ProposePickupDate) must be implemented as conditional writes:
// "update to X only where status currently equals Y". The application layer
// does not re-check status before writing; the conditional write is what
// prevents lost updates when two actors race on the same request. A write
// whose precondition matches no row returns errs.ErrPreconditionFailed.
type RequestRepository interface {
	// Add persists a new request aggregate.
	Add(ctx context.Context, aggregate *request.Request) error

	// GetByID retrieves a request by its identifier.
	// Returns errs.ErrObjectNotFound when no such request exists.
	GetByID(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// FindLatestPickupRequested retrieves the most recent pickup request
	// (no delivery address) for the client+vehicle pair that is still in
	// Requested status. Returns errs.ErrObjectNotFound when none exists.
	FindLatestPickupRequested(ctx context.Context, clientID, vehicleID kernel.UUID) (*request.Request, error)

	// FindLatestPickupForClientVehicle retrieves the most recent pickup request
	// for the client+vehicle pair in any non-terminal status. Broader lookup
	// than FindLatestPickupRequested; used for reschedule proposals.
	FindLatestPickupForClientVehicle(ctx context.Context, clientID, vehicleID kernel.UUID) (*request.Request, error)

	// SchedulePickup persists the window, scheduling timestamp, and Scheduled
	// status of an aggregate that was just scheduled. Conditional on the stored
	// status still being Requested.
	SchedulePickup(ctx context.Context, aggregate *request.Request) error

	// UpdateStatus persists the aggregate's current status. Conditional on the
	// stored status still being expectedFrom.
	UpdateStatus(ctx context.Context, aggregate *request.Request, expectedFrom request.Status) error

	// ProposePickupDate persists the aggregate's desired date without touching
	// its status. Conditional on the stored status being non-terminal.
	ProposePickupDate(ctx context.Context, aggregate *request.Request) error

	// AddEvent appends one record to the request's audit trail.
	AddEvent(ctx context.Context, event request.Event) error

	// GetScheduledPickupsStartingBetween retrieves pickup requests in Scheduled
	// status whose window opens inside [from, to). Used by the reminder job.
	GetScheduledPickupsStartingBetween(ctx context.Context, from, to time.Time) ([]*request.Request, error)
}
