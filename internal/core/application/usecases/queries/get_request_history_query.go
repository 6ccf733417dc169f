package queries

import (
	"errors"
	"time"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"
	"fleetyard/internal/pkg/guard"
)

var ErrGetRequestHistoryQueryIsNotConstructed = errors.New(
	"GetRequestHistoryQuery must be created via NewGetRequestHistoryQuery constructor",
)

// GetRequestHistoryQuery retrieves the audit trail of a single request in
// chronological order.
//
// Example:
//
//	query, err := NewGetRequestHistoryQuery(requestID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetRequestHistoryQueryHandler(db)
//
//	history, err := handler.Handle(ctx, query)
type GetRequestHistoryQuery struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRequestHistoryQuery creates a query for the given request's audit trail.
func NewGetRequestHistoryQuery(requestID kernel.UUID) (GetRequestHistoryQuery, error) {
	q := GetRequestHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setRequestID(requestID); err != nil {
		return GetRequestHistoryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRequestHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestHistoryQueryIsNotConstructed)
}

// RequestID returns the identifier of the request whose trail is read.
func (q GetRequestHistoryQuery) RequestID() kernel.UUID {
	return q.requestID
}

func (q *GetRequestHistoryQuery) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.requestID = id
	return nil
}

// GetRequestHistoryQueryResponse is one entry of a request's audit trail.
type GetRequestHistoryQueryResponse struct {
	Type       request.EventType
	StatusFrom request.Status
	StatusTo   request.Status
	ActorID    kernel.UUID
	ActorRole  request.ActorRole
	Notes      *string
	OccurredAt time.Time
}
