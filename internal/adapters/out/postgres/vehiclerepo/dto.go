// Package vehiclerepo persists the slice of vehicle state the request
// lifecycle owns: the externally visible status string and the append-only
// service timeline. Vehicles themselves are created by the fleet service.
package vehiclerepo

import (
	"time"

	"github.com/google/uuid"
)

// VehicleDTO represents the vehicle row this service updates.
// Only the status column is written here; the remaining vehicle data belongs
// to the fleet service.
type VehicleDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status    string
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for vehicles.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// TimelineEntryDTO represents one append-only service history row.
type TimelineEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID `gorm:"type:uuid;index"`
	Status    string
	Notes     *string
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for timeline entries.
func (TimelineEntryDTO) TableName() string {
	return "vehicle_timeline"
}
