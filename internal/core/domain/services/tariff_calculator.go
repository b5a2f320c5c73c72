package services

import (
	"fmt"
	"strings"

	"parcel/internal/core/domain/model/geography"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/pricing"
)

// Tariff table. All amounts are whole currency units except the per-gram
// surcharge, which works in hundredths so gram-precise weights price exactly.
const (
	documentWithinCityCost  = 60
	documentOutsideCityCost = 80

	nonDocumentWithinCityBase  = 110
	nonDocumentOutsideCityBase = 150

	// flatTierGrams is the inclusive upper bound of the flat non-document
	// tier: exactly 3kg still prices flat.
	flatTierGrams = 3000

	// extraPerGramHundredths is 40 units per kilogram expressed per gram:
	// 40 * 100 / 1000.
	extraPerGramHundredths = 4

	// outsideCitySurcharge applies once, only in the over-3kg branch, on top
	// of the higher outside-city base. The flat tier already bundles the
	// zone difference into its base price.
	outsideCitySurcharge = 40
)

// TariffCalculator is the pricing engine: a pure function over parcel
// attributes and the geography directory. It performs no I/O and holds no
// mutable state, so a single instance serves all submissions concurrently.
//
// Example:
//
//	calculator := services.NewTariffCalculator(directory)
//	breakdown := calculator.Quote(parcel.NonDocument, "gulshan", "zindabazar", kernel.ParseWeight("5"))
//	fmt.Println(breakdown.TotalCost()) // "270"
type TariffCalculator struct {
	directory *geography.Directory
}

// NewTariffCalculator creates a pricing engine over the given directory.
func NewTariffCalculator(directory *geography.Directory) *TariffCalculator {
	return &TariffCalculator{directory: directory}
}

// Quote computes the cost breakdown for a shipment. If either service center
// does not resolve, Quote degrades to the zero breakdown (zero cost, empty
// zone) instead of failing: the form is simply not complete enough to price
// yet, and callers must not stage from such a result.
//
// Weight only matters for non-document parcels; documents price flat by zone
// no matter what weight is supplied.
func (c *TariffCalculator) Quote(
	parcelType parcel.Type,
	senderServiceCenterID, receiverServiceCenterID string,
	weight kernel.Weight,
) pricing.CostBreakdown {
	senderRegion, err := c.directory.RegionOf(senderServiceCenterID)
	if err != nil {
		return pricing.CostBreakdown{}
	}
	receiverRegion, err := c.directory.RegionOf(receiverServiceCenterID)
	if err != nil {
		return pricing.CostBreakdown{}
	}

	zone := pricing.OutsideCity
	if senderRegion.IsEqual(receiverRegion) {
		zone = pricing.WithinCity
	}

	if parcelType == parcel.Document {
		return quoteDocument(zone)
	}
	return quoteNonDocument(zone, weight)
}

func quoteDocument(zone pricing.DeliveryZone) pricing.CostBreakdown {
	base := kernel.NewMoneyFromUnits(documentOutsideCityCost)
	if zone == pricing.WithinCity {
		base = kernel.NewMoneyFromUnits(documentWithinCityCost)
	}

	return pricing.NewCostBreakdown(base, kernel.Money{}, zone,
		fmt.Sprintf("Document delivery %s", strings.ToLower(zone.String())))
}

func quoteNonDocument(zone pricing.DeliveryZone, weight kernel.Weight) pricing.CostBreakdown {
	base := kernel.NewMoneyFromUnits(nonDocumentOutsideCityBase)
	if zone == pricing.WithinCity {
		base = kernel.NewMoneyFromUnits(nonDocumentWithinCityBase)
	}

	if weight.AtMost(flatTierGrams) {
		return pricing.NewCostBreakdown(base, kernel.Money{}, zone,
			fmt.Sprintf("Non-document up to 3kg (%s)", strings.ToLower(zone.String())))
	}

	flatTier, _ := kernel.NewWeightFromGrams(flatTierGrams)
	extraWeight := weight.Sub(flatTier)
	extra := kernel.NewMoneyFromHundredths(extraWeight.Grams() * extraPerGramHundredths)

	explanation := fmt.Sprintf("Non-document >3kg: Base (%s) + %skg extra",
		strings.ToLower(zone.String()), extraWeight)
	if zone == pricing.OutsideCity {
		extra = extra.Add(kernel.NewMoneyFromUnits(outsideCitySurcharge))
		explanation += " + outside city charge"
	}

	return pricing.NewCostBreakdown(base, extra, zone, explanation)
}
