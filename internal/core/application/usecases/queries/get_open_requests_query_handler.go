package queries

import (
	"context"
	"database/sql"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenRequestsQueryHandler reads open requests straight from the database.
// Uses direct SQL for read performance; the aggregate is not rehydrated.
type GetOpenRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenRequestsQueryHandler creates a handler for open request queries.
func NewGetOpenRequestsQueryHandler(db *gorm.DB) GetOpenRequestsQueryHandler {
	return GetOpenRequestsQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal requests.
// Results are sorted by creation time so the oldest pending work is first.
func (h GetOpenRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenRequestsQuery,
) ([]GetOpenRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetOpenRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_id,
			client_id,
			address_id,
			status,
			desired_date,
			window_start,
			window_end
		FROM delivery_requests
		WHERE status NOT IN (?, ?, ?)
		ORDER BY created_at
	`, request.Delivered.String(), request.Canceled.String(), request.Rejected.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenRequestsQueryResponse
		var id, vehicleID, clientID uuid.UUID
		var addressID uuid.NullUUID
		var status string
		var desiredDate, windowStart, windowEnd sql.NullTime

		err = rows.Scan(
			&id,
			&vehicleID,
			&clientID,
			&addressID,
			&status,
			&desiredDate,
			&windowStart,
			&windowEnd,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}
		if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}

		resp.Kind = request.Pickup
		if addressID.Valid {
			resp.Kind = request.Delivery
		}

		if resp.Status, err = request.StatusFromString(status); err != nil {
			return nil, err
		}

		if desiredDate.Valid {
			d := desiredDate.Time.UTC()
			resp.DesiredDate = &d
		}
		if windowStart.Valid {
			s := windowStart.Time.UTC()
			resp.WindowStart = &s
		}
		if windowEnd.Valid {
			e := windowEnd.Time.UTC()
			resp.WindowEnd = &e
		}

		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
