package ports

import (
	"context"

	"fleetyard/internal/core/domain/model/kernel"
)

// Notification templates emitted by the request lifecycle.
const (
	NotificationPickupApproved          = "pickup_approved"
	NotificationDeliveryPendingApproval = "delivery_pending_approval"
	NotificationPickupReminder          = "pickup_reminder"
)

// Notifier dispatches a templated notification to a profile. Delivery is
// best-effort: the lifecycle commits its state changes before sending, and a
// failed send is reported to the caller but never rolls anything back.
type Notifier interface {
	Send(ctx context.Context, toProfileID kernel.UUID, template string, payload map[string]any) error
}
