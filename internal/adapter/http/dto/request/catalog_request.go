package request

import "studio_orders/internal/domain/entities"

// FilterServicesRequest is the POST /catalog/services/filter payload.
// Zero price bounds mean unbounded on that side.
type FilterServicesRequest struct {
	CategoryIDs  []string `json:"categoryIds"`
	Complexities []string `json:"complexities"`
	Tags         []string `json:"tags"`
	PriceMin     float64  `json:"priceMin"`
	PriceMax     float64  `json:"priceMax"`
}

// QuoteRequest prices a selection set without creating anything.
type QuoteRequest struct {
	SelectedServices []SelectedServiceRequest `json:"selectedServices" binding:"required"`
	Locale           string                   `json:"locale"`
}

func (r QuoteRequest) ToSelections() []entities.SelectedService {
	out := make([]entities.SelectedService, 0, len(r.SelectedServices))
	for _, s := range r.SelectedServices {
		out = append(out, entities.SelectedService{
			ServiceID: s.ServiceID,
			Priority:  s.ResolvePriority(),
		})
	}
	return out
}
