package pricing

import (
	"fmt"

	"parcel/internal/pkg/errs"
)

// DeliveryZone classifies a shipment by region membership: sender and
// receiver service centers in the same region are "within city", anything
// else is "outside city". The zone drives the tariff branch, the estimated
// delivery window, and the delivery type label on the order.
type DeliveryZone int

const (
	// UnknownZone means the zone could not be determined, typically because
	// a service center did not resolve. Its label is empty.
	UnknownZone DeliveryZone = iota

	// WithinCity covers same-region deliveries.
	WithinCity

	// OutsideCity covers cross-region deliveries.
	OutsideCity
)

func getZoneStrings() map[DeliveryZone]string {
	return map[DeliveryZone]string{
		UnknownZone: "",
		WithinCity:  "Within City",
		OutsideCity: "Outside City/District",
	}
}

// ZoneFromString converts the persisted zone label back to a DeliveryZone.
func ZoneFromString(s string) (DeliveryZone, error) {
	for zone, label := range getZoneStrings() {
		if label == s && zone != UnknownZone {
			return zone, nil
		}
	}
	return UnknownZone, errs.NewValueIsInvalidErrorWithCause(
		"delivery zone", fmt.Errorf("%q is not a valid delivery zone", s))
}

// Validate checks that the zone is a determined value.
func (z DeliveryZone) Validate() error {
	if z != WithinCity && z != OutsideCity {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery zone", fmt.Errorf("%d is not a valid delivery zone", z))
	}
	return nil
}

// String returns the customer-facing zone label, or an empty string for an
// undetermined zone.
func (z DeliveryZone) String() string {
	if str, ok := getZoneStrings()[z]; ok {
		return str
	}
	return ""
}

// DeliveryDays returns the estimated delivery window in days: one day within
// the city, three days across regions.
func (z DeliveryZone) DeliveryDays() int {
	if z == WithinCity {
		return 1
	}
	return 3
}

// DeliveryType returns the order's delivery type label: "local" for
// within-city shipments, "intercity" otherwise.
func (z DeliveryZone) DeliveryType() string {
	if z == WithinCity {
		return "local"
	}
	return "intercity"
}
