package queries

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetStagedParcelsQueryHandler lists staged orders straight from the
// database. Like the other read-side handlers it bypasses the aggregate and
// scans only the columns the listing needs.
//
// Example:
//
//	handler := NewGetStagedParcelsQueryHandler(db)
//	query, _ := NewGetStagedParcelsQuery(order.StatusDraft, cutoff)
//
//	drafts, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list drafts: %v", err)
//	    return err
//	}
type GetStagedParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetStagedParcelsQueryHandler creates a handler for staged order
// listings. Requires a GORM database connection for query execution.
func NewGetStagedParcelsQueryHandler(db *gorm.DB) GetStagedParcelsQueryHandler {
	return GetStagedParcelsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted oldest first so the reminder
// job reports the most stale drafts at the top.
func (h GetStagedParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetStagedParcelsQuery,
) ([]GetStagedParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetStagedParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			status,
			created_by,
			base_cost,
			extra_cost,
			created_at
		FROM parcels
		WHERE status = ? AND created_at < ?
		ORDER BY created_at
	`, query.Status().String(), query.StagedBefore()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStagedParcelsQueryResponse
		var baseCost, extraCost int64
		var createdAt time.Time

		err = rows.Scan(
			&resp.ID,
			&resp.Title,
			&resp.Status,
			&resp.CreatedBy,
			&baseCost,
			&extraCost,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		resp.TotalCost = kernel.NewMoneyFromHundredths(baseCost + extraCost)
		resp.CreatedAt = createdAt
		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
