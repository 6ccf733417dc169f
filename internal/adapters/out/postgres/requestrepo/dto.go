// Package requestrepo provides data transfer objects and mapping functions for
// request persistence. It implements the repository pattern for the request
// aggregate, converting between domain entities and database rows.
package requestrepo

import (
	"time"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting request
// aggregates. The status column stores the lowercase string form so the rows
// read naturally in ad hoc queries; the kind is derived from address_id
// presence on restore.
type RequestDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VehicleID      uuid.UUID  `gorm:"type:uuid;index"`
	ClientID       uuid.UUID  `gorm:"type:uuid;index"`
	ServiceOrderID *uuid.UUID `gorm:"type:uuid"`
	AddressID      *uuid.UUID `gorm:"type:uuid"`
	Status         string     `gorm:"index"`
	DesiredDate    *time.Time
	WindowStart    *time.Time `gorm:"index"`
	WindowEnd      *time.Time
	ScheduledAt    *time.Time
	FeeAmount      *float64
	CreatedBy      uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for request entities.
func (RequestDTO) TableName() string {
	return "delivery_requests"
}

// EventDTO represents one append-only audit trail row.
type EventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID  uuid.UUID `gorm:"type:uuid;index"`
	EventType  string
	StatusFrom string
	StatusTo   string
	ActorID    uuid.UUID `gorm:"type:uuid"`
	ActorRole  string
	Notes      *string
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for audit events.
func (EventDTO) TableName() string {
	return "delivery_events"
}

// fromDomain converts a request domain aggregate to its database representation.
func fromDomain(aggregate *request.Request) RequestDTO {
	var serviceOrderID, addressID *uuid.UUID
	if id := aggregate.ServiceOrderID(); id != nil {
		raw := id.Bytes()
		serviceOrderID = &raw
	}
	if id := aggregate.AddressID(); id != nil {
		raw := id.Bytes()
		addressID = &raw
	}

	var windowStart, windowEnd *time.Time
	if w := aggregate.Window(); w != nil {
		start, end := w.Start(), w.End()
		windowStart = &start
		windowEnd = &end
	}

	return RequestDTO{
		ID:             aggregate.ID().Bytes(),
		VehicleID:      aggregate.VehicleID().Bytes(),
		ClientID:       aggregate.ClientID().Bytes(),
		ServiceOrderID: serviceOrderID,
		AddressID:      addressID,
		Status:         aggregate.Status().String(),
		DesiredDate:    aggregate.DesiredDate(),
		WindowStart:    windowStart,
		WindowEnd:      windowEnd,
		ScheduledAt:    aggregate.ScheduledAt(),
		FeeAmount:      aggregate.FeeAmount(),
		CreatedBy:      aggregate.CreatedBy().Bytes(),
	}
}

// fromDomainEvent converts an audit event to its database representation.
// A fresh row identifier is assigned on every append.
func fromDomainEvent(event request.Event) EventDTO {
	return EventDTO{
		ID:         kernel.NewUUID().Bytes(),
		RequestID:  event.RequestID.Bytes(),
		EventType:  string(event.Type),
		StatusFrom: event.StatusFrom.String(),
		StatusTo:   event.StatusTo.String(),
		ActorID:    event.ActorID.Bytes(),
		ActorRole:  string(event.ActorRole),
		Notes:      event.Notes,
	}
}

// toDomain converts a database DTO to a request domain aggregate.
func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var serviceOrderID, addressID *kernel.UUID
	if dto.ServiceOrderID != nil {
		soID, soErr := kernel.UUIDFromBytes((*dto.ServiceOrderID)[:])
		if soErr != nil {
			return nil, soErr
		}
		serviceOrderID = &soID
	}
	if dto.AddressID != nil {
		aID, aErr := kernel.UUIDFromBytes((*dto.AddressID)[:])
		if aErr != nil {
			return nil, aErr
		}
		addressID = &aID
	}

	status, err := request.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var window *request.Window
	if dto.WindowStart != nil && dto.WindowEnd != nil {
		w, wErr := request.RestoreWindow(dto.WindowStart.UTC(), dto.WindowEnd.UTC())
		if wErr != nil {
			return nil, wErr
		}
		window = &w
	}

	desiredDate := dto.DesiredDate
	if desiredDate != nil {
		d := desiredDate.UTC()
		desiredDate = &d
	}
	scheduledAt := dto.ScheduledAt
	if scheduledAt != nil {
		s := scheduledAt.UTC()
		scheduledAt = &s
	}

	return request.RestoreRequest(
		id, vehicleID, clientID,
		serviceOrderID, addressID,
		status,
		desiredDate,
		window,
		scheduledAt,
		dto.FeeAmount,
		createdBy,
	)
}
