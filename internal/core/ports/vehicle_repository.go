package ports

import (
	"context"

	"fleetyard/internal/core/domain/model/kernel"
)

// VehicleRepository is the narrow slice of vehicle persistence the request
// lifecycle needs: the externally visible status string shown to clients.
// Vehicles themselves are created and managed outside this service.
type VehicleRepository interface {
	// SetStatus overwrites the vehicle's visible status.
	// Returns errs.ErrObjectNotFound when the vehicle does not exist.
	SetStatus(ctx context.Context, vehicleID kernel.UUID, status string) error
}

// TimelineWriter appends entries to a vehicle's service history.
// The timeline is append-only; entries are never rewritten.
type TimelineWriter interface {
	Append(ctx context.Context, vehicleID kernel.UUID, status string, notes *string) error
}
