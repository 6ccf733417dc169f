package request

import (
	"fmt"
	"time"

	"fleetyard/internal/pkg/errs"
	"fleetyard/internal/pkg/guard"
)

// Default scheduling hours applied when the caller does not pick them.
const (
	DefaultWindowStartHour = 9
	DefaultWindowEndHour   = 18
)

// DateLayout is the calendar-date form used for desired dates and audit notes.
const DateLayout = "2006-01-02"

// ErrWindowIsNotConstructed is returned when validating a zero-value Window.
var ErrWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"Window must be created via MakeWindowFromDate")

// Window is the concrete start/end timestamp pair a request is scheduled into.
// Both ends are anchored to the same calendar date at UTC; no timezone inference
// is attempted beyond that. Immutable once constructed.
type Window struct {
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// MakeWindowFromDate builds the scheduling window for an ISO calendar date
// ("2006-01-02") with explicit start and end hours.
//
// Both hours must lie in 0..23 and the start hour must precede the end hour.
// The resulting timestamps are the given date at those hours, UTC.
func MakeWindowFromDate(isoDate string, startHour, endHour int) (Window, error) {
	day, err := time.ParseInLocation(DateLayout, isoDate, time.UTC)
	if err != nil {
		return Window{}, errs.NewValueIsInvalidErrorWithCause("date is invalid", err)
	}

	if startHour < 0 || startHour > 23 {
		return Window{}, errs.NewValueIsOutOfRangeError("startHour", startHour, 0, 23)
	}
	if endHour < 0 || endHour > 23 {
		return Window{}, errs.NewValueIsOutOfRangeError("endHour", endHour, 0, 23)
	}
	if startHour >= endHour {
		return Window{}, errs.NewValueIsInvalidErrorWithCause("window is invalid",
			fmt.Errorf("start hour %d does not precede end hour %d", startHour, endHour))
	}

	return Window{
		start: day.Add(time.Duration(startHour) * time.Hour),
		end:   day.Add(time.Duration(endHour) * time.Hour),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MakeDefaultWindowFromDate builds the window for an ISO calendar date using
// the default 9-to-18 hours.
func MakeDefaultWindowFromDate(isoDate string) (Window, error) {
	return MakeWindowFromDate(isoDate, DefaultWindowStartHour, DefaultWindowEndHour)
}

// RestoreWindow rebuilds a Window from persisted timestamps.
// Both timestamps must be non-zero and ordered.
func RestoreWindow(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() {
		return Window{}, errs.NewValueIsRequiredError("window timestamps")
	}
	if !start.Before(end) {
		return Window{}, errs.NewValueIsInvalidErrorWithCause("window is invalid",
			fmt.Errorf("start %s does not precede end %s", start, end))
	}
	return Window{
		start: start.UTC(),
		end:   end.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Start returns the opening timestamp of the window.
func (w Window) Start() time.Time {
	return w.start
}

// End returns the closing timestamp of the window.
func (w Window) End() time.Time {
	return w.end
}

// Validate checks that the window went through a constructor.
func (w Window) Validate() error {
	return w.guard.Validate(ErrWindowIsNotConstructed)
}
