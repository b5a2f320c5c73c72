// Package pricing holds the derived cost artifacts of the tariff: the
// delivery zone classification and the immutable CostBreakdown shown to the
// customer and embedded into staged orders.
package pricing

import "parcel/internal/core/domain/model/kernel"

// CostBreakdown is the result of quoting a parcel: a base cost, any extra
// charges, the zone the tariff branched on, and a human-readable explanation
// of the branch taken. The invariant BaseCost + ExtraCost == TotalCost holds
// by construction.
//
// The zero value is the degraded "not yet quotable" result returned when a
// service center does not resolve: zero cost, empty zone label. Callers must
// not stage an order from such a breakdown.
type CostBreakdown struct {
	baseCost    kernel.Money
	extraCost   kernel.Money
	zone        DeliveryZone
	explanation string
}

// NewCostBreakdown assembles a quotable breakdown.
func NewCostBreakdown(baseCost, extraCost kernel.Money, zone DeliveryZone, explanation string) CostBreakdown {
	return CostBreakdown{
		baseCost:    baseCost,
		extraCost:   extraCost,
		zone:        zone,
		explanation: explanation,
	}
}

// BaseCost returns the zone- and tier-determined base charge.
func (c CostBreakdown) BaseCost() kernel.Money {
	return c.baseCost
}

// ExtraCost returns per-kilogram and surcharge extras on top of the base.
func (c CostBreakdown) ExtraCost() kernel.Money {
	return c.extraCost
}

// TotalCost returns the amount the customer pays.
func (c CostBreakdown) TotalCost() kernel.Money {
	return c.baseCost.Add(c.extraCost)
}

// Zone returns the delivery zone the tariff branched on.
func (c CostBreakdown) Zone() DeliveryZone {
	return c.zone
}

// Explanation returns the display-only description of the tariff branch.
func (c CostBreakdown) Explanation() string {
	return c.explanation
}

// IsQuotable reports whether the breakdown can back an order. A degraded
// breakdown (unresolved location, unknown zone) is not quotable.
func (c CostBreakdown) IsQuotable() bool {
	return c.zone.Validate() == nil
}
