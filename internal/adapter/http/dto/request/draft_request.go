package request

import "studio_orders/internal/domain/entities"

type ToggleServiceRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

type ServicePriorityRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Priority  string `json:"priority" binding:"required"`
}

type GoToStepRequest struct {
	Step string `json:"step" binding:"required"`
}

// Section payloads reuse the entity shapes; the draft replaces the whole
// section on each update.
type ProjectSectionRequest struct {
	ProjectDetails entities.ProjectDetails `json:"projectDetails"`
}

type ContactSectionRequest struct {
	ContactInfo entities.ContactInfo `json:"contactInfo"`
}

type TechnicalSectionRequest struct {
	TechnicalInfo entities.TechnicalInfo `json:"technicalInfo"`
}

type ReviewSectionRequest struct {
	AgreesToTerms          bool   `json:"agreesToTerms"`
	MarketingOptIn         bool   `json:"marketingOptIn"`
	PreferredCommunication string `json:"preferredCommunication"`
	EstimatedBudget        string `json:"estimatedBudget"`
	Timeline               string `json:"timeline"`
	AdditionalRequirements string `json:"additionalRequirements"`
}
