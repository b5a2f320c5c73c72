package queries

import (
	"errors"

	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var (
	ErrGetServiceCentersQueryIsNotConstructed = errors.New(
		"GetServiceCentersQuery must be created via NewGetServiceCentersQuery constructor",
	)
)

// GetServiceCentersQuery retrieves the service centers of one region, in
// display order. It backs the second cascading select on the shipment form:
// the center list re-populates whenever the region changes.
//
// Example:
//
//	query, err := NewGetServiceCentersQuery("dhaka")
//	if err != nil {
//	    return err
//	}
//	centers, err := handler.Handle(query)
type GetServiceCentersQuery struct {
	regionID string

	guard guard.ConstructorGuard
}

// NewGetServiceCentersQuery creates a query for the given region's centers.
func NewGetServiceCentersQuery(regionID string) (GetServiceCentersQuery, error) {
	if regionID == "" {
		return GetServiceCentersQuery{}, errs.NewValueIsRequiredError("regionID")
	}

	return GetServiceCentersQuery{
		regionID: regionID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetServiceCentersQueryIsNotConstructed if validation fails.
func (q GetServiceCentersQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceCentersQueryIsNotConstructed)
}

// RegionID returns the region whose centers are requested.
func (q GetServiceCentersQuery) RegionID() string {
	return q.regionID
}

// GetServiceCentersQueryResponse represents one service center of the
// requested region.
type GetServiceCentersQueryResponse struct {
	ID   string
	Name string
}
