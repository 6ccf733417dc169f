package queries

import (
	"errors"
	"time"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"
	"fleetyard/internal/pkg/guard"
)

var ErrGetOpenRequestsQueryIsNotConstructed = errors.New(
	"GetOpenRequestsQuery must be created via NewGetOpenRequestsQuery constructor",
)

// GetOpenRequestsQuery retrieves all requests that have not reached a terminal
// status. Used by the back office to monitor pending pickups and deliveries.
//
// Example:
//
//	query := NewGetOpenRequestsQuery()
//	handler := NewGetOpenRequestsQueryHandler(db)
//
//	open, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open requests: %w", err)
//	}
//
//	fmt.Printf("%d requests still open\n", len(open))
type GetOpenRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenRequestsQuery creates a parameterless query for non-terminal requests.
func NewGetOpenRequestsQuery() GetOpenRequestsQuery {
	return GetOpenRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenRequestsQueryIsNotConstructed)
}

// GetOpenRequestsQueryResponse is the read model of one open request.
type GetOpenRequestsQueryResponse struct {
	ID          kernel.UUID
	VehicleID   kernel.UUID
	ClientID    kernel.UUID
	Kind        request.Kind
	Status      request.Status
	DesiredDate *time.Time
	WindowStart *time.Time
	WindowEnd   *time.Time
}
