// Package catalog holds the static registry of purchasable services and the
// derived query surface used by the order wizard and the submission
// pipeline. The catalog is immutable: it is built once at startup and
// injected into its consumers, never mutated and never shared as a global.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"studio_orders/internal/domain/entities"
)

var (
	ErrUnknownService = errors.New("unknown service id")
)

const defaultCurrency = "USD"

// Catalog is the read-only service/category registry.
type Catalog struct {
	currency   string
	categories []entities.ServiceCategory
	services   []entities.Service
	byID       map[string]int
}

// New builds the catalog from the built-in seed data.
func New() *Catalog {
	return NewWithData(seedCategories(), seedServices())
}

// NewWithData builds a catalog from explicit data. Categories are kept in
// stable display order.
func NewWithData(categories []entities.ServiceCategory, services []entities.Service) *Catalog {
	cats := make([]entities.ServiceCategory, len(categories))
	copy(cats, categories)
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].DisplayOrder < cats[j].DisplayOrder
	})

	svcs := make([]entities.Service, len(services))
	copy(svcs, services)

	byID := make(map[string]int, len(svcs))
	for i, s := range svcs {
		byID[s.ID] = i
	}

	return &Catalog{
		currency:   defaultCurrency,
		categories: cats,
		services:   svcs,
		byID:       byID,
	}
}

// Currency returns the catalog pricing currency.
func (c *Catalog) Currency() string {
	return c.currency
}

// Categories returns all active categories in display order.
func (c *Catalog) Categories() []entities.ServiceCategory {
	out := make([]entities.ServiceCategory, 0, len(c.categories))
	for _, cat := range c.categories {
		if cat.Active {
			out = append(out, cat)
		}
	}
	return out
}

// Services returns all active services.
func (c *Catalog) Services() []entities.Service {
	out := make([]entities.Service, 0, len(c.services))
	for _, s := range c.services {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// ServicesByCategory returns the active services owned by a category.
func (c *Catalog) ServicesByCategory(categoryID string) []entities.Service {
	out := make([]entities.Service, 0)
	for _, s := range c.services {
		if s.Active && s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	return out
}

// ServiceByID looks up a service by id. Absence is a valid outcome, reported
// through the bool.
func (c *Catalog) ServiceByID(id string) (entities.Service, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entities.Service{}, false
	}
	return c.services[i], true
}

// Search matches query case-insensitively against the localized name, the
// localized short description and the tag set of every active service. An
// empty query matches nothing.
func (c *Catalog) Search(query, locale string) []entities.Service {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	out := make([]entities.Service, 0)
	for _, s := range c.services {
		if !s.Active {
			continue
		}
		if strings.Contains(strings.ToLower(s.Name.Get(locale)), q) ||
			strings.Contains(strings.ToLower(s.ShortDescription.Get(locale)), q) ||
			tagsMatch(s.Tags, q) {
			out = append(out, s)
		}
	}
	return out
}

func tagsMatch(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// ServiceFilter narrows the active service set. Empty slices mean "no
// constraint"; a price bound of 0 means unbounded on that side.
type ServiceFilter struct {
	CategoryIDs  []string                  `json:"categoryIds,omitempty"`
	Complexities []entities.ComplexityTier `json:"complexities,omitempty"`
	Tags         []string                  `json:"tags,omitempty"`
	PriceMin     float64                   `json:"priceMin,omitempty"`
	PriceMax     float64                   `json:"priceMax,omitempty"`
}

// Filter returns the active services satisfying every given constraint.
// Tag matching is any-of; the price test checks overlap between the
// service's [min,max] and the filter's [min,max].
func (c *Catalog) Filter(f ServiceFilter) []entities.Service {
	out := make([]entities.Service, 0)
	for _, s := range c.services {
		if !s.Active {
			continue
		}
		if len(f.CategoryIDs) > 0 && !containsString(f.CategoryIDs, s.CategoryID) {
			continue
		}
		if len(f.Complexities) > 0 && !containsComplexity(f.Complexities, s.Complexity) {
			continue
		}
		if len(f.Tags) > 0 && !anyTag(s.Tags, f.Tags) {
			continue
		}
		if f.PriceMin > 0 && s.Price.Max < f.PriceMin {
			continue
		}
		if f.PriceMax > 0 && s.Price.Min > f.PriceMax {
			continue
		}
		out = append(out, s)
	}
	return out
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsComplexity(set []entities.ComplexityTier, v entities.ComplexityTier) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func anyTag(tags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range tags {
			if strings.EqualFold(t, w) {
				return true
			}
		}
	}
	return false
}

// TotalPrice sums the min and max prices of the selected services
// elementwise. An empty selection yields {0,0,currency}. A selection
// referencing an unknown service id is an error, not a silent skip.
func (c *Catalog) TotalPrice(selections []entities.SelectedService) (entities.PriceRange, error) {
	total := entities.PriceRange{Currency: c.currency}
	for _, sel := range selections {
		s, ok := c.ServiceByID(sel.ServiceID)
		if !ok {
			return entities.PriceRange{}, fmt.Errorf("%w: %s", ErrUnknownService, sel.ServiceID)
		}
		total.Min += s.Price.Min
		total.Max += s.Price.Max
	}
	return total, nil
}

// ValidationResult is the outcome of ValidateOrderData.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors,omitempty"`
}

// Simple pattern match, deliberately not full RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// ValidateOrderData performs the structural validation of a full order
// payload, independent of the wizard steps. It never panics; all problems
// are collected into the error list.
func (c *Catalog) ValidateOrderData(data entities.OrderData) ValidationResult {
	var errs []string

	if len(data.SelectedServices) == 0 {
		errs = append(errs, "At least one service must be selected")
	}
	if strings.TrimSpace(data.ProjectDetails.Title) == "" {
		errs = append(errs, "Project title is required")
	}
	if strings.TrimSpace(data.ProjectDetails.Description) == "" {
		errs = append(errs, "Project description is required")
	}
	if strings.TrimSpace(data.ContactInfo.FirstName) == "" {
		errs = append(errs, "First name is required")
	}
	if strings.TrimSpace(data.ContactInfo.LastName) == "" {
		errs = append(errs, "Last name is required")
	}
	if !ValidEmail(data.ContactInfo.Email) {
		errs = append(errs, "A valid email address is required")
	}
	if strings.TrimSpace(data.ContactInfo.Timezone) == "" {
		errs = append(errs, "Timezone is required")
	}
	if !data.AgreesToTerms {
		errs = append(errs, "Terms must be agreed to before submitting")
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
