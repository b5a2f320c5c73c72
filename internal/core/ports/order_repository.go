package ports

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for staged parcel orders.
// The staging workflow itself has no storage side effects; this port is how
// the surrounding application hands a completed order to the external store.
type OrderRepository interface {
	// Add persists a newly staged order.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, typically an appended
	// tracking event. The stored version must match the aggregate's
	// previous version (optimistic concurrency).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its "PKG-" identifier.
	Get(ctx context.Context, id kernel.ParcelID) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// oldest first.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
