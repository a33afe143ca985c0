package response

import (
	"fmt"
	"time"

	"studio_orders/internal/domain/entities"
)

// SubmitOrderResponse is the 200 envelope of POST /order/submit. The field
// names are part of the public contract.
type SubmitOrderResponse struct {
	Success        bool                `json:"success"`
	OrderID        string              `json:"orderId"`
	Message        string              `json:"message"`
	EstimatedTotal entities.PriceRange `json:"estimatedTotal"`
	TrackingURL    string              `json:"trackingUrl"`
}

// OrderErrorResponse covers both the 400 and 500 envelopes: details is set
// for validation failures, message for internal ones.
type OrderErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
	Message string   `json:"message,omitempty"`
}

func FromSubmittedOrder(o entities.Order) SubmitOrderResponse {
	return SubmitOrderResponse{
		Success:        true,
		OrderID:        o.ID,
		Message:        "Order submitted successfully",
		EstimatedTotal: o.Total,
		TrackingURL:    fmt.Sprintf("/order/track/%s", o.ID),
	}
}

type TrackingEntryResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type TrackOrderResponse struct {
	OrderID        string                  `json:"orderId"`
	Status         string                  `json:"status"`
	Priority       string                  `json:"priority"`
	EstimatedTotal entities.PriceRange     `json:"estimatedTotal"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
	History        []TrackingEntryResponse `json:"history"`
}

func FromOrderTracking(o entities.Order, entries []entities.OrderTrackingEntry) TrackOrderResponse {
	history := make([]TrackingEntryResponse, 0, len(entries))
	for _, e := range entries {
		history = append(history, TrackingEntryResponse{
			Status:    string(e.Status),
			Message:   e.Message,
			Author:    e.Author,
			CreatedAt: e.CreatedAt,
		})
	}
	return TrackOrderResponse{
		OrderID:        o.ID,
		Status:         string(o.Status),
		Priority:       string(o.Priority),
		EstimatedTotal: o.Total,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		History:        history,
	}
}

// OrderStatusResponse is returned by the admin status update endpoint.
type OrderStatusResponse struct {
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromUpdatedOrder(o entities.Order) OrderStatusResponse {
	return OrderStatusResponse{
		OrderID:   o.ID,
		Status:    string(o.Status),
		UpdatedAt: o.UpdatedAt,
	}
}
