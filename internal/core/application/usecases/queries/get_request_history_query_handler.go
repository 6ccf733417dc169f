package queries

import (
	"context"
	"database/sql"

	"fleetyard/internal/core/domain/model/kernel"
	"fleetyard/internal/core/domain/model/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRequestHistoryQueryHandler reads the audit trail of one request.
type GetRequestHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetRequestHistoryQueryHandler creates a handler for audit trail queries.
func NewGetRequestHistoryQueryHandler(db *gorm.DB) GetRequestHistoryQueryHandler {
	return GetRequestHistoryQueryHandler{db: db}
}

// Handle executes the query and returns the request's events oldest first.
// A request with no recorded events yields an empty slice, not an error.
func (h GetRequestHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetRequestHistoryQuery,
) ([]GetRequestHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetRequestHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			event_type,
			status_from,
			status_to,
			actor_id,
			actor_role,
			notes,
			created_at
		FROM delivery_events
		WHERE request_id = ?
		ORDER BY created_at
	`, query.RequestID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetRequestHistoryQueryResponse
		var eventType, statusFrom, statusTo, actorRole string
		var actorID uuid.UUID
		var notes sql.NullString

		err = rows.Scan(
			&eventType,
			&statusFrom,
			&statusTo,
			&actorID,
			&actorRole,
			&notes,
			&entry.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		entry.Type = request.EventType(eventType)
		if entry.StatusFrom, err = request.StatusFromString(statusFrom); err != nil {
			return nil, err
		}
		if entry.StatusTo, err = request.StatusFromString(statusTo); err != nil {
			return nil, err
		}
		if entry.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return nil, err
		}
		entry.ActorRole = request.ActorRole(actorRole)
		if notes.Valid {
			n := notes.String
			entry.Notes = &n
		}
		entry.OccurredAt = entry.OccurredAt.UTC()

		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
