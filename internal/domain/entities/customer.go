package entities

import "time"

// Customer is the durable customer record.
//
// Storage model (DynamoDB):
//   - PK: email (lowercased)
//
// The email key carries the uniqueness invariant: at most one customer per
// email, enforced by a conditional put on first order. Identity fields are
// mirrored from the contact info of the first order and are not merged back
// on later orders.
type Customer struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Company         string    `json:"company,omitempty"`
	Timezone        string    `json:"timezone,omitempty"`
	OrderIDs        []string  `json:"orderIds"`
	TotalOrderValue float64   `json:"totalOrderValue"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
