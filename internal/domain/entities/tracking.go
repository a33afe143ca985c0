package entities

import "time"

// TrackingMetadata captures request context for audit purposes. Missing
// values default to "unknown" at the HTTP boundary.
type TrackingMetadata struct {
	ClientIP  string `json:"clientIp"`
	UserAgent string `json:"userAgent"`
}

// OrderTrackingEntry is an append-only audit record of order status changes.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Entries for an order are monotonically non-decreasing in CreatedAt and are
// never edited or removed. Every order gets a "submitted" entry at creation.
type OrderTrackingEntry struct {
	ID        string           `json:"id"`
	OrderID   string           `json:"orderId"`
	Status    OrderStatus      `json:"status"`
	Message   string           `json:"message"`
	Author    string           `json:"author"`
	Metadata  TrackingMetadata `json:"metadata"`
	CreatedAt time.Time        `json:"createdAt"`
}
