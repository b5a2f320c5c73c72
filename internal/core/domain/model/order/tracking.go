package order

import (
	"time"

	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

// TrackingEvent is one entry of an order's tracking history: what happened,
// when, and where. Events are immutable; the history they form is
// append-only.
type TrackingEvent struct {
	status      string
	timestamp   time.Time
	description string
	location    string

	guard guard.ConstructorGuard
}

// NewTrackingEvent creates a tracking entry. Status and description are
// required; location is the region the event happened in and may be empty
// for events without a place.
func NewTrackingEvent(status string, timestamp time.Time, description, location string) (TrackingEvent, error) {
	if status == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("tracking status")
	}
	if description == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("tracking description")
	}

	return TrackingEvent{
		status:      status,
		timestamp:   timestamp,
		description: description,
		location:    location,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the event was created through NewTrackingEvent.
func (e TrackingEvent) Validate() error {
	return e.guard.Validate(errs.NewValueIsRequiredError(
		"TrackingEvent must be created via NewTrackingEvent constructor"))
}

// Status returns the event's status label ("created", "draft").
func (e TrackingEvent) Status() string {
	return e.status
}

// Timestamp returns when the event happened.
func (e TrackingEvent) Timestamp() time.Time {
	return e.timestamp
}

// Description returns the human-readable account of the event.
func (e TrackingEvent) Description() string {
	return e.description
}

// Location returns the region the event happened in, if any.
func (e TrackingEvent) Location() string {
	return e.location
}
