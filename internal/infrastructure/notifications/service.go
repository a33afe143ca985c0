package notifications

import (
	"context"
	"encoding/json"
	"log"

	"studio_orders/internal/domain/entities"
	"studio_orders/internal/usecase/interfaces"
)

// IOrderEventPublisher is the broker-facing slice of the management
// notification path.
type IOrderEventPublisher interface {
	PublishOrderSubmitted(ctx context.Context, order entities.Order) error
}

// IInvoiceGateway raises an invoice with the billing provider.
type IInvoiceGateway interface {
	CreateInvoice(ctx context.Context, order entities.Order) (invoiceID string, status string, providerResponse json.RawMessage, err error)
}

// Service fans order side effects out to their transports. Confirmation
// mail delivery is not wired to a real provider yet, so the email path
// renders and logs the message.
type Service struct {
	publisher IOrderEventPublisher
	invoices  IInvoiceGateway
}

var _ interfaces.INotificationService = (*Service)(nil)

func NewService(publisher IOrderEventPublisher, invoices IInvoiceGateway) *Service {
	return &Service{publisher: publisher, invoices: invoices}
}

func (s *Service) SendOrderConfirmationEmail(ctx context.Context, email string, order entities.Order) error {
	log.Printf("[notifications][email] order confirmation to=%s order_id=%s subject=%q",
		email, order.ID, "Your order "+order.ID+" has been received")
	return nil
}

func (s *Service) NotifyManagementTeam(ctx context.Context, order entities.Order) error {
	if s.publisher == nil {
		log.Printf("[notifications][management] no publisher configured order_id=%s", order.ID)
		return nil
	}
	return s.publisher.PublishOrderSubmitted(ctx, order)
}

func (s *Service) ScheduleInvoiceGeneration(ctx context.Context, order entities.Order) error {
	if s.invoices == nil {
		log.Printf("[notifications][invoice] no gateway configured order_id=%s", order.ID)
		return nil
	}
	invoiceID, status, _, err := s.invoices.CreateInvoice(ctx, order)
	if err != nil {
		return err
	}
	log.Printf("[notifications][invoice] created invoice_id=%s status=%s order_id=%s", invoiceID, status, order.ID)
	return nil
}
