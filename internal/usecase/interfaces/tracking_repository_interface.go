package interfaces

import (
	"context"

	"studio_orders/internal/domain/entities"
)

// IOrderTrackingRepository abstracts the append-only audit log. Entries are
// never updated or deleted.

type IOrderTrackingRepository interface {
	Append(ctx context.Context, e entities.OrderTrackingEntry) (entities.OrderTrackingEntry, error)
	// ListByOrderID returns entries in ascending timestamp order.
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderTrackingEntry, error)
}
