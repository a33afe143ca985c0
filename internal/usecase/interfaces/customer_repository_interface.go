package interfaces

import (
	"context"
	"errors"

	"studio_orders/internal/domain/entities"
)

// ErrCustomerNotFound is returned by AppendOrder when no customer record
// exists for the email.
var ErrCustomerNotFound = errors.New("customer not found")

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// FindOrCreate must be atomic with respect to the email key: two concurrent
// calls with the same email yield exactly one stored record, and both
// callers observe it. This carries the one-customer-per-email invariant.

type ICustomerRepository interface {
	// FindOrCreate stores candidate unless a customer with the same email
	// already exists, in which case the existing record is returned as-is.
	// The bool reports whether a new record was created.
	FindOrCreate(ctx context.Context, candidate entities.Customer) (entities.Customer, bool, error)
	// GetByEmail returns the zero Customer when no record exists.
	GetByEmail(ctx context.Context, email string) (entities.Customer, error)
	// AppendOrder appends an order reference and adds orderMax to the
	// running total, returning the updated record. A missing customer
	// record is ErrCustomerNotFound.
	AppendOrder(ctx context.Context, email, orderID string, orderMax float64) (entities.Customer, error)
}
