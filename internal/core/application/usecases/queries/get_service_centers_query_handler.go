package queries

import (
	"parcel/internal/core/domain/model/geography"
)

// GetServiceCentersQueryHandler serves a region's service centers from the
// in-memory geography directory. An unknown region id surfaces as an
// ObjectNotFound error from the directory.
type GetServiceCentersQueryHandler struct {
	directory *geography.Directory
}

// NewGetServiceCentersQueryHandler creates a handler over the shared
// directory.
func NewGetServiceCentersQueryHandler(directory *geography.Directory) GetServiceCentersQueryHandler {
	return GetServiceCentersQueryHandler{directory: directory}
}

// Handle returns the requested region's service centers in catalog order.
func (h GetServiceCentersQueryHandler) Handle(
	query GetServiceCentersQuery,
) ([]GetServiceCentersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	centers, err := h.directory.ServiceCentersOf(query.RegionID())
	if err != nil {
		return nil, err
	}

	responses := make([]GetServiceCentersQueryResponse, 0, len(centers))
	for _, c := range centers {
		responses = append(responses, GetServiceCentersQueryResponse{
			ID:   c.ID(),
			Name: c.Name(),
		})
	}

	return responses, nil
}
