package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"studio_orders/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrInvoiceGatewayNotConfigured = errors.New("invoice gateway not configured")

// InvoiceGateway raises a payment request against Mercado Pago for a
// submitted order. In mock mode (the default for local development) no
// provider call is made and an approved invoice is fabricated.
type InvoiceGateway struct {
	client   payment.Client
	mockMode bool
}

func NewInvoiceGateway(accessToken string) (*InvoiceGateway, error) {
	if isInvoiceGatewayMockEnabled() {
		log.Printf("[invoice][gateway] mock mode enabled")
		return &InvoiceGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[invoice][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[invoice][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[invoice][gateway] Mercado Pago client initialized")

	return &InvoiceGateway{client: payment.NewClient(cfg)}, nil
}

// CreateInvoice requests a payment for the upper bound of the order estimate.
// The lower bound is carried in the metadata so billing can adjust later.
func (g *InvoiceGateway) CreateInvoice(ctx context.Context, order entities.Order) (invoiceID string, status string, providerResponse json.RawMessage, err error) {
	payload, err := json.Marshal(map[string]any{
		"transaction_amount": order.Total.Max,
		"description":        fmt.Sprintf("Order %s: %s", order.ID, order.Data.ProjectDetails.Title),
		"external_reference": order.ID,
		"payer": map[string]any{
			"email": order.Data.ContactInfo.Email,
		},
		"metadata": map[string]any{
			"order_id":     order.ID,
			"estimate_min": order.Total.Min,
			"estimate_max": order.Total.Max,
			"currency":     order.Total.Currency,
		},
	})
	if err != nil {
		return "", "", nil, err
	}

	if g != nil && g.mockMode {
		log.Printf("[invoice][gateway] mock create start order_id=%s", order.ID)

		resp := map[string]any{}
		if err := json.Unmarshal(payload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(payload)}
		}

		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		resp["id"] = id
		resp["status"] = "approved"
		resp["status_detail"] = "accredited"
		resp["date_created"] = now
		resp["date_approved"] = now

		b, err := json.Marshal(resp)
		if err != nil {
			log.Printf("[invoice][gateway] mock response marshal failed err=%v", err)
			return "", "", nil, err
		}

		log.Printf("[invoice][gateway] mock create success invoice_id=%s status=approved", id)
		return id, "approved", b, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[invoice][gateway] gateway not configured")
		return "", "", nil, ErrInvoiceGatewayNotConfigured
	}
	log.Printf("[invoice][gateway] create start order_id=%s amount=%s", order.ID, strconv.FormatFloat(order.Total.Max, 'f', -1, 64))

	var req payment.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		log.Printf("[invoice][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[invoice][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[invoice][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[invoice][gateway] create success invoice_id=%d status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func isInvoiceGatewayMockEnabled() bool {
	for _, key := range []string{"INVOICE_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
