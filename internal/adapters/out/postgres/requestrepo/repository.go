package requestrepo

import (
	"context"
	"errors"
	"time"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"
	"fleetyard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements RequestRepository using GORM.
//
// Status-moving writes are conditional: "set status to X where it still equals
// Y". When the condition matches no row the stored status changed underneath
// the caller and errs.ErrPreconditionFailed comes back instead of silently
// overwriting the concurrent transition.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new request to the database.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByID retrieves a request by its identifier.
func (r *GormRequestRepository) GetByID(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindLatestPickupRequested retrieves the most recent pickup request for the
// client+vehicle pair still awaiting approval.
func (r *GormRequestRepository) FindLatestPickupRequested(
	ctx context.Context, clientID, vehicleID kernel.UUID,
) (*request.Request, error) {
	if err := errors.Join(clientID.Validate(), vehicleID.Validate()); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND vehicle_id = ? AND address_id IS NULL AND status = ?",
			clientID.Bytes(), vehicleID.Bytes(), request.Requested.String()).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup request", vehicleID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindLatestPickupForClientVehicle retrieves the most recent non-terminal
// pickup request for the client+vehicle pair.
func (r *GormRequestRepository) FindLatestPickupForClientVehicle(
	ctx context.Context, clientID, vehicleID kernel.UUID,
) (*request.Request, error) {
	if err := errors.Join(clientID.Validate(), vehicleID.Validate()); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND vehicle_id = ? AND address_id IS NULL AND status NOT IN (?, ?, ?)",
			clientID.Bytes(), vehicleID.Bytes(),
			request.Delivered.String(), request.Canceled.String(), request.Rejected.String()).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup request", vehicleID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// SchedulePickup persists the window, scheduling timestamp, and Scheduled
// status. Conditional on the stored status still being Requested.
func (r *GormRequestRepository) SchedulePickup(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ? AND status = ?", dto.ID, request.Requested.String()).
		Updates(map[string]any{
			"status":       dto.Status,
			"window_start": dto.WindowStart,
			"window_end":   dto.WindowEnd,
			"scheduled_at": dto.ScheduledAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewPreconditionFailedError("request status", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateStatus persists the aggregate's current status.
// Conditional on the stored status still being expectedFrom.
func (r *GormRequestRepository) UpdateStatus(
	ctx context.Context, aggregate *request.Request, expectedFrom request.Status,
) error {
	if err := errors.Join(aggregate.Validate(), expectedFrom.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), expectedFrom.String()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewPreconditionFailedError("request status", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ProposePickupDate persists the aggregate's desired date without touching its
// status. Conditional on the stored status being non-terminal.
func (r *GormRequestRepository) ProposePickupDate(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ? AND status NOT IN (?, ?, ?)",
			aggregate.ID().Bytes(),
			request.Delivered.String(), request.Canceled.String(), request.Rejected.String()).
		Update("desired_date", aggregate.DesiredDate())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewPreconditionFailedError("request status", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddEvent appends one record to the request's audit trail.
func (r *GormRequestRepository) AddEvent(ctx context.Context, event request.Event) error {
	dto := fromDomainEvent(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetScheduledPickupsStartingBetween retrieves pickup requests in Scheduled
// status whose window opens inside [from, to).
func (r *GormRequestRepository) GetScheduledPickupsStartingBetween(
	ctx context.Context, from, to time.Time,
) ([]*request.Request, error) {
	var dtos []RequestDTO
	err := r.db.WithContext(ctx).
		Where("address_id IS NULL AND status = ? AND window_start >= ? AND window_start < ?",
			request.Scheduled.String(), from, to).
		Order("window_start").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*request.Request, 0, len(dtos))
	for _, dto := range dtos {
		req, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		requests = append(requests, req)
	}

	return requests, nil
}
