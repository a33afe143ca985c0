package interfaces

import (
	"context"

	"studio_orders/internal/domain/entities"
)

// INotificationService groups the downstream side effects fired after an
// order is accepted. All three are best-effort: errors are logged by the
// dispatching task runner and never surfaced to the submitting client.

type INotificationService interface {
	SendOrderConfirmationEmail(ctx context.Context, email string, order entities.Order) error
	NotifyManagementTeam(ctx context.Context, order entities.Order) error
	ScheduleInvoiceGeneration(ctx context.Context, order entities.Order) error
}
