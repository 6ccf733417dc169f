package vehiclerepo

import (
	"context"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// SetStatus overwrites the vehicle's visible status.
func (r *GormVehicleRepository) SetStatus(ctx context.Context, vehicleID kernel.UUID, status string) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}

	result := r.db.WithContext(ctx).Model(&VehicleDTO{}).
		Where("id = ?", vehicleID.Bytes()).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", vehicleID.String())
	}

	return nil
}

// GormTimelineWriter implements TimelineWriter using GORM.
type GormTimelineWriter struct {
	db *gorm.DB
}

// NewGormTimelineWriter creates a new GORM timeline writer.
func NewGormTimelineWriter(db *gorm.DB) *GormTimelineWriter {
	return &GormTimelineWriter{db: db}
}

// Append adds one entry to the vehicle's service history.
func (w *GormTimelineWriter) Append(
	ctx context.Context, vehicleID kernel.UUID, status string, notes *string,
) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}

	dto := TimelineEntryDTO{
		ID:        kernel.NewUUID().Bytes(),
		VehicleID: vehicleID.Bytes(),
		Status:    status,
		Notes:     notes,
	}
	return w.db.WithContext(ctx).Create(&dto).Error
}
