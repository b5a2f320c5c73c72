package queries

import (
	"parcel/internal/core/domain/model/geography"
)

// GetRegionsQueryHandler serves the region list from the in-memory geography
// directory. The directory is immutable after startup, so this handler does
// no I/O and never fails past validation.
type GetRegionsQueryHandler struct {
	directory *geography.Directory
}

// NewGetRegionsQueryHandler creates a handler over the shared directory.
func NewGetRegionsQueryHandler(directory *geography.Directory) GetRegionsQueryHandler {
	return GetRegionsQueryHandler{directory: directory}
}

// Handle returns all regions in the order the catalog defines them.
func (h GetRegionsQueryHandler) Handle(query GetRegionsQuery) ([]GetRegionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	regions := h.directory.Regions()
	responses := make([]GetRegionsQueryResponse, 0, len(regions))
	for _, r := range regions {
		responses = append(responses, GetRegionsQueryResponse{
			ID:   r.ID(),
			Name: r.Name(),
		})
	}

	return responses, nil
}
