package request

import (
	"fmt"

	"fleetyard/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery/collection request.
// It implements a state machine with defined transitions:
//
//	requested ──┬──> scheduled ──┐
//	            │                ├──> in_transit ──> delivered
//	            └──> approved ───┘
//
// Delivered, canceled, and rejected are terminal. Canceled and rejected are
// reached only through mechanisms outside this package; no transition method
// produces them here.
//
// The string forms are the wire/persistence values recorded in audit events.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status of every request.
	Requested

	// Approved means an admin accepted a delivery request; the client still
	// has to confirm before it is scheduled for transport.
	Approved

	// Scheduled means a concrete window was set for a pickup.
	Scheduled

	// InTransit means a partner is transporting the vehicle to the client.
	// It has no meaning for pickups.
	InTransit

	// Delivered means the vehicle reached the client. Terminal.
	Delivered

	// Canceled is terminal and set only outside this package.
	Canceled

	// Rejected is terminal and set only outside this package.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Requested: "requested",
		Approved:  "approved",
		Scheduled: "scheduled",
		InTransit: "in_transit",
		Delivered: "delivered",
		Canceled:  "canceled",
		Rejected:  "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested: "requested",
		Approved:  "approved",
		Scheduled: "scheduled",
		InTransit: "in_transit",
		Delivered: "delivered",
		Canceled:  "canceled",
		Rejected:  "rejected",
	}
}

// StatusFromString maps a persisted string back to its Status value.
// Returns an error for anything outside the defined set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value belongs to the defined set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase persistence form, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled || s == Rejected
}

// Schedule transitions the status to Scheduled.
//
// Valid transitions:
//   - Requested -> Scheduled (pickup approved with a concrete window)
//
// Returns (0, error) if the current status does not allow scheduling.
func (s Status) Schedule() (Status, error) {
	if s != Requested {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to schedule", s))
	}
	return Scheduled, nil
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Requested -> Approved (delivery accepted, awaiting client confirmation)
//
// Returns (0, error) if the current status does not allow approval.
func (s Status) Approve() (Status, error) {
	if s != Requested {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to approve", s))
	}
	return Approved, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - Scheduled -> InTransit
//   - Approved  -> InTransit
//
// Returns (0, error) if the current status does not allow it.
func (s Status) StartTransit() (Status, error) {
	if s != Scheduled && s != Approved {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to start transit", s))
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Any non-terminal status may complete: a partner confirming handover wins
// over intermediate bookkeeping states.
//
// Returns (0, error) for terminal or invalid statuses.
func (s Status) Deliver() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is terminal and cannot be delivered", s))
	}
	return Delivered, nil
}
