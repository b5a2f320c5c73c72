package queries

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var (
	ErrGetStagedParcelsQueryIsNotConstructed = errors.New(
		"GetStagedParcelsQuery must be created via NewGetStagedParcelsQuery constructor",
	)
)

// GetStagedParcelsQuery retrieves staged orders in one status that were
// created before a cutoff. The draft reminder job uses it to find drafts
// whose payment has been pending for too long.
//
// Example:
//
//	cutoff := time.Now().Add(-24 * time.Hour)
//	query, err := NewGetStagedParcelsQuery(order.StatusDraft, cutoff)
//	if err != nil {
//	    return err
//	}
//
//	parcels, err := handler.Handle(ctx, query)
//	fmt.Printf("%d drafts older than a day\n", len(parcels))
type GetStagedParcelsQuery struct {
	status       order.Status
	stagedBefore time.Time

	guard guard.ConstructorGuard
}

// NewGetStagedParcelsQuery creates a query for orders in the given status
// created before the cutoff. The cutoff must be set.
func NewGetStagedParcelsQuery(status order.Status, stagedBefore time.Time) (GetStagedParcelsQuery, error) {
	if err := status.Validate(); err != nil {
		return GetStagedParcelsQuery{}, err
	}
	if stagedBefore.IsZero() {
		return GetStagedParcelsQuery{}, errs.NewValueIsRequiredError("stagedBefore")
	}

	return GetStagedParcelsQuery{
		status:       status,
		stagedBefore: stagedBefore,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStagedParcelsQueryIsNotConstructed if validation fails.
func (q GetStagedParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetStagedParcelsQueryIsNotConstructed)
}

// Status returns the order status to filter by.
func (q GetStagedParcelsQuery) Status() order.Status {
	return q.status
}

// StagedBefore returns the creation-time cutoff.
func (q GetStagedParcelsQuery) StagedBefore() time.Time {
	return q.stagedBefore
}

// GetStagedParcelsQueryResponse represents one staged order in listing form.
type GetStagedParcelsQueryResponse struct {
	ID        string
	Title     string
	Status    string
	CreatedBy string
	TotalCost kernel.Money
	CreatedAt time.Time
}
