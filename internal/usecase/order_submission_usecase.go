package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"studio_orders/internal/catalog"
	"studio_orders/internal/domain/entities"
	"studio_orders/internal/infrastructure/tasks"
	"studio_orders/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
)

// ValidationError carries the client-correctable problems of a rejected
// submission. Nothing is persisted when it is returned.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid order data: %s", strings.Join(e.Details, "; "))
}

// SubmissionResult is the outcome of an accepted submission.
type SubmissionResult struct {
	Order           entities.Order
	Customer        entities.Customer
	CustomerCreated bool
}

// IOrderSubmissionUseCase turns a completed order payload into durable
// records plus fire-and-forget notifications.

type IOrderSubmissionUseCase interface {
	Submit(ctx context.Context, data entities.OrderData, meta entities.TrackingMetadata) (SubmissionResult, error)
}

// Generated order ids collide with negligible probability, but the store
// still enforces uniqueness; a handful of retries is plenty.
const orderIDAttempts = 3

const submittedTrackingMessage = "Order received and queued for review"

// OrderSubmissionUseCase is the server-side submission pipeline. It is
// stateless per call and safe under concurrent invocation; customer
// reconciliation relies on the repository's atomic find-or-create.
type OrderSubmissionUseCase struct {
	catalog      *catalog.Catalog
	customers    interfaces.ICustomerRepository
	orders       interfaces.IOrderRepository
	tracking     interfaces.IOrderTrackingRepository
	notifier     interfaces.INotificationService
	runner       *tasks.Runner
	invoiceDelay time.Duration
}

var _ IOrderSubmissionUseCase = (*OrderSubmissionUseCase)(nil)

func NewOrderSubmissionUseCase(
	cat *catalog.Catalog,
	customers interfaces.ICustomerRepository,
	orders interfaces.IOrderRepository,
	tracking interfaces.IOrderTrackingRepository,
	notifier interfaces.INotificationService,
	runner *tasks.Runner,
	invoiceDelay time.Duration,
) *OrderSubmissionUseCase {
	return &OrderSubmissionUseCase{
		catalog:      cat,
		customers:    customers,
		orders:       orders,
		tracking:     tracking,
		notifier:     notifier,
		runner:       runner,
		invoiceDelay: invoiceDelay,
	}
}

func (u *OrderSubmissionUseCase) Submit(ctx context.Context, data entities.OrderData, meta entities.TrackingMetadata) (SubmissionResult, error) {
	// Client-side validation is never trusted; everything is re-checked.
	if res := u.catalog.ValidateOrderData(data); !res.IsValid {
		return SubmissionResult{}, &ValidationError{Details: res.Errors}
	}

	total, err := u.catalog.TotalPrice(data.SelectedServices)
	if err != nil {
		// Unknown service ids surface as validation problems, not 500s.
		return SubmissionResult{}, &ValidationError{Details: []string{err.Error()}}
	}

	now := time.Now().UTC()
	email := strings.ToLower(strings.TrimSpace(data.ContactInfo.Email))

	customer, created, err := u.customers.FindOrCreate(ctx, entities.Customer{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: strings.TrimSpace(data.ContactInfo.FirstName),
		LastName:  strings.TrimSpace(data.ContactInfo.LastName),
		Company:   strings.TrimSpace(data.ContactInfo.Company),
		Timezone:  strings.TrimSpace(data.ContactInfo.Timezone),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return SubmissionResult{}, err
	}
	if created {
		log.Printf("[order][usecase] new customer email=%s customer_id=%s", email, customer.ID)
	}

	priority := entities.DerivePriority(data.EstimatedBudget, data.Timeline, total.Max)

	var order entities.Order
	for attempt := 1; attempt <= orderIDAttempts; attempt++ {
		order = entities.Order{
			ID:         catalog.GenerateOrderID(),
			CustomerID: customer.ID,
			Status:     entities.OrderStatusSubmitted,
			Data:       data,
			Total:      total,
			Priority:   priority,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		order, err = u.orders.Create(ctx, order)
		if err == nil {
			break
		}
		if !errors.Is(err, interfaces.ErrDuplicateOrderID) {
			return SubmissionResult{}, err
		}
		log.Printf("[order][usecase] order id collision attempt=%d id=%s", attempt, order.ID)
	}
	if err != nil {
		return SubmissionResult{}, err
	}

	customer, err = u.customers.AppendOrder(ctx, customer.Email, order.ID, total.Max)
	if err != nil {
		return SubmissionResult{}, err
	}

	entry := entities.OrderTrackingEntry{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Status:    entities.OrderStatusSubmitted,
		Message:   submittedTrackingMessage,
		Author:    "system",
		Metadata:  meta,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := u.tracking.Append(ctx, entry); err != nil {
		return SubmissionResult{}, err
	}

	log.Printf("[order][usecase] order accepted id=%s customer_id=%s priority=%s total_max=%.2f",
		order.ID, customer.ID, order.Priority, total.Max)
	u.dispatchSideEffects(order)

	return SubmissionResult{Order: order, Customer: customer, CustomerCreated: created}, nil
}

// dispatchSideEffects queues the three post-acceptance notifications. The
// response to the client never waits on any of them.
func (u *OrderSubmissionUseCase) dispatchSideEffects(order entities.Order) {
	if u.runner == nil || u.notifier == nil {
		return
	}
	email := order.Data.ContactInfo.Email

	u.runner.Submit(tasks.Task{
		Name:  "order-confirmation-email",
		Retry: tasks.RetryConfig{Attempts: 3, Delay: 2 * time.Second},
		Fn: func(ctx context.Context) error {
			return u.notifier.SendOrderConfirmationEmail(ctx, email, order)
		},
	})
	u.runner.Submit(tasks.Task{
		Name:  "management-notification",
		Retry: tasks.RetryConfig{Attempts: 3, Delay: 2 * time.Second},
		Fn: func(ctx context.Context) error {
			return u.notifier.NotifyManagementTeam(ctx, order)
		},
	})
	u.runner.Submit(tasks.Task{
		Name:  "invoice-generation",
		Delay: u.invoiceDelay,
		Retry: tasks.RetryConfig{Attempts: 5, Delay: 5 * time.Second},
		Fn: func(ctx context.Context) error {
			return u.notifier.ScheduleInvoiceGeneration(ctx, order)
		},
	})
}
