package queries_test

import (
	"testing"

	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/geography"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirectory(t *testing.T) *geography.Directory {
	t.Helper()
	d, err := geography.NewDirectory([]geography.RegionDefinition{
		{ID: "dhaka", Name: "Dhaka", ServiceCenters: []geography.ServiceCenterDefinition{
			{ID: "dhanmondi", Name: "Dhanmondi"},
			{ID: "gulshan", Name: "Gulshan"},
			{ID: "uttara", Name: "Uttara"},
		}},
		{ID: "sylhet", Name: "Sylhet", ServiceCenters: []geography.ServiceCenterDefinition{
			{ID: "zindabazar", Name: "Zindabazar"},
			{ID: "amberkhana", Name: "Amberkhana"},
		}},
	})
	require.NoError(t, err)
	return d
}

func TestNewGetRegionsQuery_Valid(t *testing.T) {
	query := queries.NewGetRegionsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetRegionsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetRegionsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetRegionsQueryIsNotConstructed)
}

func TestGetRegionsQueryHandler_Handle(t *testing.T) {
	handler := queries.NewGetRegionsQueryHandler(testDirectory(t))

	regions, err := handler.Handle(queries.NewGetRegionsQuery())

	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, queries.GetRegionsQueryResponse{ID: "dhaka", Name: "Dhaka"}, regions[0])
	assert.Equal(t, queries.GetRegionsQueryResponse{ID: "sylhet", Name: "Sylhet"}, regions[1])
}

func TestGetRegionsQueryHandler_Handle_InvalidQuery(t *testing.T) {
	handler := queries.NewGetRegionsQueryHandler(testDirectory(t))

	_, err := handler.Handle(queries.GetRegionsQuery{})

	require.Error(t, err)
}
