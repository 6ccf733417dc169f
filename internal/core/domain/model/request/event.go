package request

import (
	"fmt"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/pkg/errs"
)

// EventType names the lifecycle transition an audit event records.
type EventType string

const (
	EventScheduled          EventType = "scheduled"
	EventApproved           EventType = "approved"
	EventInTransit          EventType = "in_transit"
	EventDelivered          EventType = "delivered"
	EventRescheduleProposed EventType = "reschedule_proposed"
)

// Validate checks that the event type belongs to the defined set.
func (t EventType) Validate() error {
	switch t {
	case EventScheduled, EventApproved, EventInTransit, EventDelivered, EventRescheduleProposed:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("event type is invalid",
		fmt.Errorf("%q is not a valid event type", string(t)))
}

// ActorRole identifies which kind of actor performed an operation.
type ActorRole string

const (
	RoleAdmin      ActorRole = "admin"
	RoleClient     ActorRole = "client"
	RoleSpecialist ActorRole = "specialist"
	RolePartner    ActorRole = "partner"
	RoleSystem     ActorRole = "system"
)

// Validate checks that the actor role belongs to the defined set.
func (r ActorRole) Validate() error {
	switch r {
	case RoleAdmin, RoleClient, RoleSpecialist, RolePartner, RoleSystem:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("actor role is invalid",
		fmt.Errorf("%q is not a valid actor role", string(r)))
}

// Event is one append-only audit record in a request's history. Events are
// never mutated or deleted; ordering is given by append order in storage.
type Event struct {
	RequestID  kernel.UUID
	Type       EventType
	StatusFrom Status
	StatusTo   Status
	ActorID    kernel.UUID
	ActorRole  ActorRole
	Notes      *string
}

// NewEvent assembles a validated audit record for a lifecycle transition.
// Notes is optional and carries human-readable context such as a superseded
// desired date.
func NewEvent(
	requestID kernel.UUID,
	eventType EventType,
	statusFrom, statusTo Status,
	actorID kernel.UUID,
	actorRole ActorRole,
	notes *string,
) (Event, error) {
	if err := requestID.Validate(); err != nil {
		return Event{}, err
	}
	if err := eventType.Validate(); err != nil {
		return Event{}, err
	}
	if err := statusFrom.Validate(); err != nil {
		return Event{}, err
	}
	if err := statusTo.Validate(); err != nil {
		return Event{}, err
	}
	if err := actorID.Validate(); err != nil {
		return Event{}, err
	}
	if err := actorRole.Validate(); err != nil {
		return Event{}, err
	}

	return Event{
		RequestID:  requestID,
		Type:       eventType,
		StatusFrom: statusFrom,
		StatusTo:   statusTo,
		ActorID:    actorID,
		ActorRole:  actorRole,
		Notes:      notes,
	}, nil
}
