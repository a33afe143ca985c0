package request

import (
	"strings"

	"studio_orders/internal/domain/entities"
)

// SelectedServiceRequest mirrors one wizard selection. Priority falls back
// to medium when absent or unrecognized.
type SelectedServiceRequest struct {
	ServiceID      string               `json:"serviceId"`
	Priority       string               `json:"priority"`
	Customizations []string             `json:"customizations"`
	PriceSnapshot  *entities.PriceRange `json:"priceSnapshot"`
}

func (r SelectedServiceRequest) ResolvePriority() entities.ServicePriority {
	switch entities.ServicePriority(strings.ToLower(strings.TrimSpace(r.Priority))) {
	case entities.ServicePriorityLow:
		return entities.ServicePriorityLow
	case entities.ServicePriorityHigh:
		return entities.ServicePriorityHigh
	default:
		return entities.ServicePriorityMedium
	}
}

// SubmitOrderRequest is the POST /order/submit payload. Field names are
// fixed by the public contract and must not change.
type SubmitOrderRequest struct {
	SelectedServices       []SelectedServiceRequest `json:"selectedServices"`
	ProjectDetails         entities.ProjectDetails  `json:"projectDetails"`
	ContactInfo            entities.ContactInfo     `json:"contactInfo"`
	TechnicalInfo          entities.TechnicalInfo   `json:"technicalInfo"`
	AdditionalRequirements string                   `json:"additionalRequirements"`
	AgreesToTerms          bool                     `json:"agreesToTerms"`
	MarketingOptIn         bool                     `json:"marketingOptIn"`
	PreferredCommunication string                   `json:"preferredCommunication"`
	EstimatedBudget        string                   `json:"estimatedBudget"`
	Timeline               string                   `json:"timeline"`
}

func (r SubmitOrderRequest) ToOrderData() entities.OrderData {
	services := make([]entities.SelectedService, 0, len(r.SelectedServices))
	for _, s := range r.SelectedServices {
		services = append(services, entities.SelectedService{
			ServiceID:      strings.TrimSpace(s.ServiceID),
			Priority:       s.ResolvePriority(),
			Customizations: s.Customizations,
			PriceSnapshot:  s.PriceSnapshot,
		})
	}
	return entities.OrderData{
		SelectedServices:       services,
		ProjectDetails:         r.ProjectDetails,
		ContactInfo:            r.ContactInfo,
		TechnicalInfo:          r.TechnicalInfo,
		AdditionalRequirements: r.AdditionalRequirements,
		AgreesToTerms:          r.AgreesToTerms,
		MarketingOptIn:         r.MarketingOptIn,
		PreferredCommunication: r.PreferredCommunication,
		EstimatedBudget:        strings.TrimSpace(r.EstimatedBudget),
		Timeline:               strings.TrimSpace(r.Timeline),
	}
}

// UpdateOrderStatusRequest is the admin payload for PATCH /order/:order_id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Author string `json:"author"`
	Note   string `json:"note"`
}
