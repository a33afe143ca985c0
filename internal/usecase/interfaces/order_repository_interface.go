package interfaces

import (
	"context"
	"errors"

	"studio_orders/internal/domain/entities"
)

// ErrDuplicateOrderID is returned by Create when the generated order id is
// already taken. Callers regenerate and retry.
var ErrDuplicateOrderID = errors.New("duplicate order id")

// IOrderRepository abstracts DynamoDB persistence for Order. Orders are
// created once and afterwards only touched by status or note updates.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	// GetByID returns the zero Order when no record exists.
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	AppendNote(ctx context.Context, id string, note entities.OrderNote) (entities.Order, error)
}
