package geography_test

import (
	"testing"

	"parcel/internal/core/domain/model/geography"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefinitions() []geography.RegionDefinition {
	return []geography.RegionDefinition{
		{
			ID:   "dhaka",
			Name: "Dhaka",
			ServiceCenters: []geography.ServiceCenterDefinition{
				{ID: "dhanmondi", Name: "Dhanmondi"},
				{ID: "gulshan", Name: "Gulshan"},
				{ID: "uttara", Name: "Uttara"},
			},
		},
		{
			ID:   "chittagong",
			Name: "Chittagong",
			ServiceCenters: []geography.ServiceCenterDefinition{
				{ID: "agrabad", Name: "Agrabad"},
				{ID: "nasirabad", Name: "Nasirabad"},
			},
		},
	}
}

func TestNewDirectory(t *testing.T) {
	t.Run("builds directory from definitions", func(t *testing.T) {
		d, err := geography.NewDirectory(testDefinitions())

		require.NoError(t, err)
		assert.Len(t, d.Regions(), 2)
	})

	t.Run("rejects empty catalog", func(t *testing.T) {
		_, err := geography.NewDirectory(nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects duplicate region ids", func(t *testing.T) {
		defs := testDefinitions()
		defs[1].ID = defs[0].ID
		defs[1].ServiceCenters = nil

		_, err := geography.NewDirectory(defs)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects service center claimed by two regions", func(t *testing.T) {
		defs := testDefinitions()
		defs[1].ServiceCenters = append(defs[1].ServiceCenters,
			geography.ServiceCenterDefinition{ID: "gulshan", Name: "Gulshan"})

		_, err := geography.NewDirectory(defs)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "gulshan")
	})
}

func TestDirectory_RegionOf(t *testing.T) {
	d, err := geography.NewDirectory(testDefinitions())
	require.NoError(t, err)

	t.Run("resolves known service center", func(t *testing.T) {
		region, err := d.RegionOf("gulshan")

		require.NoError(t, err)
		assert.Equal(t, "dhaka", region.ID())
		assert.Equal(t, "Dhaka", region.Name())
	})

	t.Run("unknown service center is not found", func(t *testing.T) {
		_, err := d.RegionOf("nowhere")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestDirectory_ServiceCentersOf(t *testing.T) {
	d, err := geography.NewDirectory(testDefinitions())
	require.NoError(t, err)

	t.Run("preserves configuration order", func(t *testing.T) {
		centers, err := d.ServiceCentersOf("dhaka")

		require.NoError(t, err)
		require.Len(t, centers, 3)
		assert.Equal(t, "dhanmondi", centers[0].ID())
		assert.Equal(t, "gulshan", centers[1].ID())
		assert.Equal(t, "uttara", centers[2].ID())
	})

	t.Run("unknown region is not found", func(t *testing.T) {
		_, err := d.ServiceCentersOf("atlantis")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		centers, err := d.ServiceCentersOf("chittagong")
		require.NoError(t, err)
		centers[0] = geography.ServiceCenter{}

		again, err := d.ServiceCentersOf("chittagong")
		require.NoError(t, err)
		assert.Equal(t, "agrabad", again[0].ID())
	})
}

func TestDirectory_Contains(t *testing.T) {
	d, err := geography.NewDirectory(testDefinitions())
	require.NoError(t, err)

	assert.True(t, d.Contains("dhaka", "uttara"))
	assert.False(t, d.Contains("chittagong", "uttara"))
	assert.False(t, d.Contains("dhaka", "nowhere"))
}
