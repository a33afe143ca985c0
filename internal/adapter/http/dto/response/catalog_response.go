package response

import (
	"studio_orders/internal/domain/entities"
)

// CategoryResponse flattens a category to the requested locale.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
}

func FromCategory(c entities.ServiceCategory, locale string) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID,
		Name:         c.Name.Get(locale),
		Description:  c.Description.Get(locale),
		DisplayOrder: c.DisplayOrder,
	}
}

func FromCategories(cats []entities.ServiceCategory, locale string) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, FromCategory(c, locale))
	}
	return out
}

// ServiceResponse flattens a service to the requested locale.
type ServiceResponse struct {
	ID               string                `json:"id"`
	CategoryID       string                `json:"categoryId"`
	Name             string                `json:"name"`
	ShortDescription string                `json:"shortDescription"`
	LongDescription  string                `json:"longDescription,omitempty"`
	Features         []string              `json:"features,omitempty"`
	Deliverables     []string              `json:"deliverables,omitempty"`
	Timeline         string                `json:"timeline,omitempty"`
	Price            entities.PriceRange   `json:"price"`
	PriceDisplay     string                `json:"priceDisplay"`
	Complexity       string                `json:"complexity"`
	Tags             []string              `json:"tags,omitempty"`
	Popular          bool                  `json:"popular"`
	Customizable     bool                  `json:"customizable"`
	Delivery         entities.DeliveryInfo `json:"delivery"`
}

// priceFormatter lets the handler inject catalog.FormatPriceRange without a
// package cycle.
type priceFormatter func(r entities.PriceRange, locale string) string

func FromService(s entities.Service, locale string, format priceFormatter) ServiceResponse {
	display := ""
	if format != nil {
		display = format(s.Price, locale)
	}
	return ServiceResponse{
		ID:               s.ID,
		CategoryID:       s.CategoryID,
		Name:             s.Name.Get(locale),
		ShortDescription: s.ShortDescription.Get(locale),
		LongDescription:  s.LongDescription.Get(locale),
		Features:         s.Features,
		Deliverables:     s.Deliverables,
		Timeline:         s.Timeline,
		Price:            s.Price,
		PriceDisplay:     display,
		Complexity:       string(s.Complexity),
		Tags:             s.Tags,
		Popular:          s.Popular,
		Customizable:     s.Customizable,
		Delivery:         s.Delivery,
	}
}

func FromServices(svcs []entities.Service, locale string, format priceFormatter) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(svcs))
	for _, s := range svcs {
		out = append(out, FromService(s, locale, format))
	}
	return out
}

// QuoteResponse is the priced selection returned by POST /catalog/quote.
type QuoteResponse struct {
	Total        entities.PriceRange `json:"total"`
	TotalDisplay string              `json:"totalDisplay"`
}
