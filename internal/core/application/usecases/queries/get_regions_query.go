// Package queries contains read-side operations in the CQRS architecture.
// Queries never touch aggregates: geography queries read the in-memory
// directory, order queries go straight to the database with raw SQL and
// return flat response structs shaped for presentation.
package queries

import (
	"errors"

	"parcel/internal/pkg/guard"
)

var (
	ErrGetRegionsQueryIsNotConstructed = errors.New(
		"GetRegionsQuery must be created via NewGetRegionsQuery constructor",
	)
)

// GetRegionsQuery retrieves the full list of serviceable regions in display
// order. It backs the first of the two cascading location selects on the
// shipment form.
//
// Example:
//
//	query := NewGetRegionsQuery()
//	handler := NewGetRegionsQueryHandler(directory)
//
//	regions, err := handler.Handle(query)
//	if err != nil {
//	    return fmt.Errorf("failed to list regions: %w", err)
//	}
//	for _, r := range regions {
//	    fmt.Printf("%s (%s)\n", r.Name, r.ID)
//	}
type GetRegionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRegionsQuery creates a query to list all regions.
// This is a parameterless query.
func NewGetRegionsQuery() GetRegionsQuery {
	return GetRegionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRegionsQueryIsNotConstructed if validation fails.
func (q GetRegionsQuery) Validate() error {
	return q.guard.Validate(ErrGetRegionsQueryIsNotConstructed)
}

// GetRegionsQueryResponse represents one serviceable region.
type GetRegionsQueryResponse struct {
	ID   string
	Name string
}
