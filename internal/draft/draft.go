// Package draft implements the multi-step order wizard: a mutable draft
// aggregate advanced through a fixed sequence of steps, each gated by a
// validation predicate. Drafts have no durable identity; they live in a
// TTL'd session store and may be discarded or reset at any time.
package draft

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"studio_orders/internal/catalog"
	"studio_orders/internal/domain/entities"
)

// Step is a wizard step. Steps are ordered; forward movement requires every
// predecessor step to pass its validation predicate.

type Step int

const (
	StepServices Step = iota
	StepProject
	StepContact
	StepTechnical
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepServices:
		return "services"
	case StepProject:
		return "project"
	case StepContact:
		return "contact"
	case StepTechnical:
		return "technical"
	case StepReview:
		return "review"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Valid reports whether s is a known wizard step.
func (s Step) Valid() bool {
	return s >= StepServices && s <= StepReview
}

// ParseStep maps a step name back to its Step value.
func ParseStep(name string) (Step, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "services":
		return StepServices, nil
	case "project":
		return StepProject, nil
	case "contact":
		return StepContact, nil
	case "technical":
		return StepTechnical, nil
	case "review":
		return StepReview, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStep, name)
	}
}

var (
	ErrInvalidStep = errors.New("invalid step")
	ErrAtFinalStep = errors.New("already at the final step")
)

// FieldValidation is the validation outcome for a single field.
type FieldValidation struct {
	Valid   bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
}

// ValidationState maps field names to their validation outcome. It is
// recomputed on demand and never persisted.
type ValidationState map[string]FieldValidation

// OK reports whether every field in the state is valid.
func (v ValidationState) OK() bool {
	for _, f := range v {
		if !f.Valid {
			return false
		}
	}
	return true
}

// StepError is the typed failure returned when a transition requires a step
// that does not satisfy its validation predicate.
type StepError struct {
	Step   Step
	Fields ValidationState
}

func (e *StepError) Error() string {
	bad := make([]string, 0, len(e.Fields))
	for name, f := range e.Fields {
		if !f.Valid {
			bad = append(bad, name)
		}
	}
	return fmt.Sprintf("step %s failed validation: %s", e.Step, strings.Join(bad, ", "))
}

// Draft is an in-progress order. All mutation is synchronous; persistence
// between requests is the store's concern.
type Draft struct {
	ID        string             `json:"id"`
	Step      Step               `json:"step"`
	Data      entities.OrderData `json:"data"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// New returns an empty draft at the services step.
func New(id string) *Draft {
	now := time.Now().UTC()
	return &Draft{
		ID:        id,
		Step:      StepServices,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (d *Draft) touch() {
	d.UpdatedAt = time.Now().UTC()
}

// ToggleService toggles membership of a service in the selection set.
// Selecting inserts a SelectedService with default priority medium and a
// price snapshot taken from the catalog now; deselecting removes it. The
// toggle is self-inverse.
func (d *Draft) ToggleService(c *catalog.Catalog, serviceID string) error {
	for i, sel := range d.Data.SelectedServices {
		if sel.ServiceID == serviceID {
			d.Data.SelectedServices = append(
				d.Data.SelectedServices[:i],
				d.Data.SelectedServices[i+1:]...,
			)
			d.touch()
			return nil
		}
	}

	svc, ok := c.ServiceByID(serviceID)
	if !ok {
		return fmt.Errorf("%w: %s", catalog.ErrUnknownService, serviceID)
	}
	snapshot := svc.Price
	d.Data.SelectedServices = append(d.Data.SelectedServices, entities.SelectedService{
		ServiceID:     serviceID,
		Priority:      entities.ServicePriorityMedium,
		PriceSnapshot: &snapshot,
	})
	d.touch()
	return nil
}

// SetServicePriority updates the priority of an existing selection.
func (d *Draft) SetServicePriority(serviceID string, p entities.ServicePriority) error {
	for i := range d.Data.SelectedServices {
		if d.Data.SelectedServices[i].ServiceID == serviceID {
			d.Data.SelectedServices[i].Priority = p
			d.touch()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", catalog.ErrUnknownService, serviceID)
}

// SetProjectDetails replaces the project section.
func (d *Draft) SetProjectDetails(p entities.ProjectDetails) {
	d.Data.ProjectDetails = p
	d.touch()
}

// SetContactInfo replaces the contact section.
func (d *Draft) SetContactInfo(ci entities.ContactInfo) {
	d.Data.ContactInfo = ci
	d.touch()
}

// SetTechnicalInfo replaces the technical section.
func (d *Draft) SetTechnicalInfo(ti entities.TechnicalInfo) {
	d.Data.TechnicalInfo = ti
	d.touch()
}

// ReviewInfo is the final-step data collected alongside the terms agreement.
type ReviewInfo struct {
	AgreesToTerms          bool   `json:"agreesToTerms"`
	MarketingOptIn         bool   `json:"marketingOptIn"`
	PreferredCommunication string `json:"preferredCommunication,omitempty"`
	EstimatedBudget        string `json:"estimatedBudget,omitempty"`
	Timeline               string `json:"timeline,omitempty"`
	AdditionalRequirements string `json:"additionalRequirements,omitempty"`
}

// SetReviewInfo replaces the review section.
func (d *Draft) SetReviewInfo(r ReviewInfo) {
	d.Data.AgreesToTerms = r.AgreesToTerms
	d.Data.MarketingOptIn = r.MarketingOptIn
	d.Data.PreferredCommunication = r.PreferredCommunication
	d.Data.EstimatedBudget = r.EstimatedBudget
	d.Data.Timeline = r.Timeline
	d.Data.AdditionalRequirements = r.AdditionalRequirements
	d.touch()
}

// ValidateStep recomputes the validation state for exactly the fields
// relevant to the given step. The technical step has no required fields.
func (d *Draft) ValidateStep(s Step) ValidationState {
	state := ValidationState{}
	switch s {
	case StepServices:
		state["selectedServices"] = check(len(d.Data.SelectedServices) > 0, "At least one service must be selected")
	case StepProject:
		state["title"] = check(strings.TrimSpace(d.Data.ProjectDetails.Title) != "", "Project title is required")
		state["description"] = check(strings.TrimSpace(d.Data.ProjectDetails.Description) != "", "Project description is required")
	case StepContact:
		state["firstName"] = check(strings.TrimSpace(d.Data.ContactInfo.FirstName) != "", "First name is required")
		state["lastName"] = check(strings.TrimSpace(d.Data.ContactInfo.LastName) != "", "Last name is required")
		state["email"] = check(catalog.ValidEmail(d.Data.ContactInfo.Email), "A valid email address is required")
		state["timezone"] = check(strings.TrimSpace(d.Data.ContactInfo.Timezone) != "", "Timezone is required")
	case StepTechnical:
		// No required fields.
	case StepReview:
		state["agreesToTerms"] = check(d.Data.AgreesToTerms, "Terms must be agreed to before submitting")
	}
	return state
}

func check(ok bool, message string) FieldValidation {
	if ok {
		return FieldValidation{Valid: true}
	}
	return FieldValidation{Valid: false, Message: message}
}

// Advance moves to the next step. The current step must pass its validation
// predicate; a failure is returned as a *StepError, not a boolean.
func (d *Draft) Advance() error {
	if d.Step >= StepReview {
		return ErrAtFinalStep
	}
	if state := d.ValidateStep(d.Step); !state.OK() {
		return &StepError{Step: d.Step, Fields: state}
	}
	d.Step++
	d.touch()
	return nil
}

// GoTo jumps to a step. Backward jumps are always allowed; a forward jump
// requires the current and every intermediate step to validate.
func (d *Draft) GoTo(target Step) error {
	if !target.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStep, int(target))
	}
	for s := d.Step; s < target; s++ {
		if state := d.ValidateStep(s); !state.OK() {
			return &StepError{Step: s, Fields: state}
		}
	}
	d.Step = target
	d.touch()
	return nil
}

// Reset discards all progress unconditionally, restoring the empty initial
// draft under the same id.
func (d *Draft) Reset() {
	d.Step = StepServices
	d.Data = entities.OrderData{}
	d.touch()
}

// TotalPrice projects the current selection against the catalog.
func (d *Draft) TotalPrice(c *catalog.Catalog) (entities.PriceRange, error) {
	return c.TotalPrice(d.Data.SelectedServices)
}

// SelectedServiceDetails resolves the current selection to full catalog
// services, in selection order.
func (d *Draft) SelectedServiceDetails(c *catalog.Catalog) []entities.Service {
	out := make([]entities.Service, 0, len(d.Data.SelectedServices))
	for _, sel := range d.Data.SelectedServices {
		if svc, ok := c.ServiceByID(sel.ServiceID); ok {
			out = append(out, svc)
		}
	}
	return out
}
