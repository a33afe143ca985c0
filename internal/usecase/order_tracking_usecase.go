package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"studio_orders/internal/domain/entities"
	"studio_orders/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// OrderTracking bundles an order with its audit history.
type OrderTracking struct {
	Order   entities.Order
	Entries []entities.OrderTrackingEntry
}

// IOrderTrackingUseCase exposes the read side of the tracking log and the
// internal status-update surface.

type IOrderTrackingUseCase interface {
	Track(ctx context.Context, orderID string) (OrderTracking, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, note, author string) (entities.Order, error)
}

type OrderTrackingUseCase struct {
	orders   interfaces.IOrderRepository
	tracking interfaces.IOrderTrackingRepository
}

var _ IOrderTrackingUseCase = (*OrderTrackingUseCase)(nil)

func NewOrderTrackingUseCase(orders interfaces.IOrderRepository, tracking interfaces.IOrderTrackingRepository) *OrderTrackingUseCase {
	return &OrderTrackingUseCase{orders: orders, tracking: tracking}
}

func (u *OrderTrackingUseCase) Track(ctx context.Context, orderID string) (OrderTracking, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return OrderTracking{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return OrderTracking{}, err
	}
	if order.ID == "" {
		return OrderTracking{}, ErrOrderNotFound
	}

	entries, err := u.tracking.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderTracking{}, err
	}
	return OrderTracking{Order: order, Entries: entries}, nil
}

// UpdateStatus changes the order status, optionally appends a note, and
// always appends a tracking entry. No transition matrix is enforced; the
// audit log is the record of what happened.
func (u *OrderTrackingUseCase) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, note, author string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !entities.ValidOrderStatus(status) {
		return entities.Order{}, ErrInvalidOrderStatus
	}
	if author = strings.TrimSpace(author); author == "" {
		author = "system"
	}

	order, err := u.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	if note = strings.TrimSpace(note); note != "" {
		order, err = u.orders.AppendNote(ctx, orderID, entities.OrderNote{
			Author:    author,
			Text:      note,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return entities.Order{}, err
		}
	}

	message := note
	if message == "" {
		message = "Status updated to " + string(status)
	}
	_, err = u.tracking.Append(ctx, entities.OrderTrackingEntry{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Status:    status,
		Message:   message,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}
