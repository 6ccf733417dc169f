package http

import "time"

// actorHeader carries the authenticated actor's profile id, injected by the
// gateway in front of this service.
const actorHeader = "X-Actor-Id"

// Error is the JSON error envelope returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ApprovePickupRequest identifies the client+vehicle pair whose latest pending
// pickup is approved.
type ApprovePickupRequest struct {
	ClientID  string `json:"clientId"`
	VehicleID string `json:"vehicleId"`
}

// ProposePickupDateRequest proposes an alternate pickup date for the latest
// open pickup of a client+vehicle pair.
type ProposePickupDateRequest struct {
	ClientID     string `json:"clientId"`
	VehicleID    string `json:"vehicleId"`
	ProposedDate string `json:"proposedDate"`
}

// RequestIDResponse returns the identifier of the affected request.
type RequestIDResponse struct {
	RequestID string `json:"requestId"`
}

// OpenRequest is one row of the open requests listing.
type OpenRequest struct {
	ID          string     `json:"id"`
	VehicleID   string     `json:"vehicleId"`
	ClientID    string     `json:"clientId"`
	Kind        string     `json:"kind"`
	Status      string     `json:"status"`
	DesiredDate *string    `json:"desiredDate,omitempty"`
	WindowStart *time.Time `json:"windowStart,omitempty"`
	WindowEnd   *time.Time `json:"windowEnd,omitempty"`
}

// HistoryEntry is one row of a request's audit trail.
type HistoryEntry struct {
	Type       string    `json:"type"`
	StatusFrom string    `json:"statusFrom"`
	StatusTo   string    `json:"statusTo"`
	ActorID    string    `json:"actorId"`
	ActorRole  string    `json:"actorRole"`
	Notes      *string   `json:"notes,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
