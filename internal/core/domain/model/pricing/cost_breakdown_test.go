package pricing_test

import (
	"testing"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostBreakdown_TotalCost(t *testing.T) {
	b := pricing.NewCostBreakdown(
		kernel.NewMoneyFromUnits(150),
		kernel.NewMoneyFromUnits(120),
		pricing.OutsideCity,
		"Non-document >3kg: Base (outside city/district) + 2.0kg extra + outside city charge",
	)

	assert.Equal(t, int64(27000), b.TotalCost().Hundredths())
	assert.True(t, b.TotalCost().IsEqual(b.BaseCost().Add(b.ExtraCost())))
}

func TestCostBreakdown_IsQuotable(t *testing.T) {
	t.Run("determined zone is quotable", func(t *testing.T) {
		b := pricing.NewCostBreakdown(
			kernel.NewMoneyFromUnits(60), kernel.Money{}, pricing.WithinCity, "Document delivery within city")

		assert.True(t, b.IsQuotable())
	})

	t.Run("zero value is not quotable", func(t *testing.T) {
		var b pricing.CostBreakdown

		assert.False(t, b.IsQuotable())
		assert.True(t, b.TotalCost().IsZero())
		assert.Equal(t, "", b.Zone().String())
	})
}

func TestDeliveryZone(t *testing.T) {
	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "Within City", pricing.WithinCity.String())
		assert.Equal(t, "Outside City/District", pricing.OutsideCity.String())
		assert.Equal(t, "", pricing.UnknownZone.String())
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, pricing.WithinCity.Validate())
		require.NoError(t, pricing.OutsideCity.Validate())
		require.Error(t, pricing.UnknownZone.Validate())
	})

	t.Run("delivery window", func(t *testing.T) {
		assert.Equal(t, 1, pricing.WithinCity.DeliveryDays())
		assert.Equal(t, 3, pricing.OutsideCity.DeliveryDays())
	})

	t.Run("delivery type", func(t *testing.T) {
		assert.Equal(t, "local", pricing.WithinCity.DeliveryType())
		assert.Equal(t, "intercity", pricing.OutsideCity.DeliveryType())
	})
}
