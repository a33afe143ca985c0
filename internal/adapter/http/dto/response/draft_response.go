package response

import (
	"time"

	"studio_orders/internal/domain/entities"
	"studio_orders/internal/draft"
)

type DraftResponse struct {
	ID             string              `json:"id"`
	Step           string              `json:"step"`
	Data           entities.OrderData  `json:"data"`
	EstimatedTotal entities.PriceRange `json:"estimatedTotal"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

func FromDraft(d *draft.Draft, total entities.PriceRange) DraftResponse {
	return DraftResponse{
		ID:             d.ID,
		Step:           d.Step.String(),
		Data:           d.Data,
		EstimatedTotal: total,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

type FieldValidationResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// StepErrorResponse is the 422 envelope returned when a wizard transition
// is blocked by an invalid step.
type StepErrorResponse struct {
	Success bool                               `json:"success"`
	Error   string                             `json:"error"`
	Step    string                             `json:"step"`
	Fields  map[string]FieldValidationResponse `json:"fields"`
}

func FromStepError(e *draft.StepError) StepErrorResponse {
	fields := make(map[string]FieldValidationResponse, len(e.Fields))
	for name, fv := range e.Fields {
		fields[name] = FieldValidationResponse{Valid: fv.Valid, Message: fv.Message}
	}
	return StepErrorResponse{
		Success: false,
		Error:   "Step validation failed",
		Step:    e.Step.String(),
		Fields:  fields,
	}
}
