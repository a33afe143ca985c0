package entities

import "time"

// OrderStatus represents the order lifecycle. The lifecycle is linear-ish
// (submitted through completed, with cancelled as an exit at any point) but
// no transition matrix is enforced; status changes are recorded in the
// tracking log instead.

type OrderStatus string

const (
	OrderStatusSubmitted      OrderStatus = "submitted"
	OrderStatusReviewed       OrderStatus = "reviewed"
	OrderStatusInvoiceSent    OrderStatus = "invoice_sent"
	OrderStatusPaymentPending OrderStatus = "payment_pending"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusInProgress     OrderStatus = "in_progress"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known lifecycle statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusSubmitted, OrderStatusReviewed, OrderStatusInvoiceSent,
		OrderStatusPaymentPending, OrderStatusPaid, OrderStatusInProgress,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderPriority is the internal handling priority derived at submission time.

type OrderPriority string

const (
	OrderPriorityNormal OrderPriority = "normal"
	OrderPriorityMedium OrderPriority = "medium"
	OrderPriorityHigh   OrderPriority = "high"
)

// ServicePriority is the per-selection priority chosen by the customer.

type ServicePriority string

const (
	ServicePriorityLow    ServicePriority = "low"
	ServicePriorityMedium ServicePriority = "medium"
	ServicePriorityHigh   ServicePriority = "high"
)

// Budget and timeline bands offered on the review step.
const (
	BudgetUnder5k    = "under_5k"
	Budget5k15k      = "5k_15k"
	Budget15kPlus    = "15k_plus"
	BudgetEnterprise = "enterprise"

	TimelineRush     = "rush"
	Timeline1To2M    = "1_2_months"
	Timeline3To6M    = "3_6_months"
	TimelineFlexible = "flexible"
)

// SelectedService references a catalog service from a draft or order, plus
// the order-specific attributes. It has no identity of its own.
type SelectedService struct {
	ServiceID      string          `json:"serviceId"`
	Priority       ServicePriority `json:"priority"`
	Customizations []string        `json:"customizations,omitempty"`
	PriceSnapshot  *PriceRange     `json:"priceSnapshot,omitempty"`
}

// ProjectDetails is the project section of an order.
type ProjectDetails struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Objectives     []string `json:"objectives,omitempty"`
	Constraints    []string `json:"constraints,omitempty"`
	TargetAudience string   `json:"targetAudience,omitempty"`
	ExistingAssets string   `json:"existingAssets,omitempty"`
}

// ContactInfo is the contact section of an order.
type ContactInfo struct {
	FirstName             string            `json:"firstName"`
	LastName              string            `json:"lastName"`
	Email                 string            `json:"email"`
	Company               string            `json:"company,omitempty"`
	Position              string            `json:"position,omitempty"`
	Timezone              string            `json:"timezone"`
	PreferredContactTime  string            `json:"preferredContactTime,omitempty"`
	CommunicationChannels map[string]string `json:"communicationChannels,omitempty"`
}

// TechnicalInfo is the technical section of an order.
type TechnicalInfo struct {
	HasExistingCode      bool     `json:"hasExistingCode"`
	RepositoryLinks      []string `json:"repositoryLinks,omitempty"`
	PreferredStack       []string `json:"preferredStack,omitempty"`
	RequiredIntegrations []string `json:"requiredIntegrations,omitempty"`
	PerformanceNotes     string   `json:"performanceNotes,omitempty"`
	SecurityNotes        string   `json:"securityNotes,omitempty"`
	ScalabilityNotes     string   `json:"scalabilityNotes,omitempty"`
}

// OrderData is the full order payload collected by the wizard. It is the
// wire shape of POST /order/submit and the frozen data stored on an
// accepted Order, so the json field names here are load-bearing.
type OrderData struct {
	SelectedServices       []SelectedService `json:"selectedServices"`
	ProjectDetails         ProjectDetails    `json:"projectDetails"`
	ContactInfo            ContactInfo       `json:"contactInfo"`
	TechnicalInfo          TechnicalInfo     `json:"technicalInfo"`
	AdditionalRequirements string            `json:"additionalRequirements,omitempty"`
	AgreesToTerms          bool              `json:"agreesToTerms"`
	MarketingOptIn         bool              `json:"marketingOptIn"`
	PreferredCommunication string            `json:"preferredCommunication,omitempty"`
	EstimatedBudget        string            `json:"estimatedBudget,omitempty"`
	Timeline               string            `json:"timeline,omitempty"`
}

// OrderNote is an internal annotation appended to an order.
type OrderNote struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Order is the durable record created from an accepted draft.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Created once; only status and notes change afterwards. Never deleted.
type Order struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customerId"`
	Status     OrderStatus   `json:"status"`
	Data       OrderData     `json:"data"`
	Total      PriceRange    `json:"total"`
	Priority   OrderPriority `json:"priority"`
	Notes      []OrderNote   `json:"notes,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// DerivePriority computes the handling priority for a new order.
// Enterprise budgets and rush timelines always win; large totals or the
// 15k+ band bump the order to medium.
func DerivePriority(budget, timeline string, totalMax float64) OrderPriority {
	if budget == BudgetEnterprise || timeline == TimelineRush {
		return OrderPriorityHigh
	}
	if totalMax > 10000 || budget == Budget15kPlus {
		return OrderPriorityMedium
	}
	return OrderPriorityNormal
}
