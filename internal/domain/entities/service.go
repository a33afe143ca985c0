package entities

// Supported catalog locales. English is the canonical locale and the
// fallback for every localized string.
const (
	LocaleEN = "en"
	LocaleRU = "ru"
)

// Localized holds per-locale copies of a catalog text.
type Localized map[string]string

// Get returns the text for the requested locale, falling back to English
// when the locale is missing or empty.
func (l Localized) Get(locale string) string {
	if v, ok := l[locale]; ok && v != "" {
		return v
	}
	return l[LocaleEN]
}

// ComplexityTier classifies how involved a service engagement is.

type ComplexityTier string

const (
	ComplexityBasic      ComplexityTier = "basic"
	ComplexityAdvanced   ComplexityTier = "advanced"
	ComplexityEnterprise ComplexityTier = "enterprise"
)

// PriceRange is a min/max price band in a single currency. Min == Max
// represents a fixed price.
type PriceRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// DeliveryInfo carries delivery metadata shown alongside a service.
type DeliveryInfo struct {
	EstimatedDays int    `json:"estimatedDays"`
	SupportLevel  string `json:"supportLevel"`
	TeamSize      int    `json:"teamSize"`
}

// Service is an offerable unit of work from the catalog.
//
// Services are immutable reference data: the full set is built once at
// process start and never mutated afterwards. A service belongs to exactly
// one category.
type Service struct {
	ID               string         `json:"id"`
	CategoryID       string         `json:"categoryId"`
	Name             Localized      `json:"name"`
	ShortDescription Localized      `json:"shortDescription"`
	LongDescription  Localized      `json:"longDescription,omitempty"`
	Features         []string       `json:"features,omitempty"`
	Deliverables     []string       `json:"deliverables,omitempty"`
	Timeline         string         `json:"timeline,omitempty"`
	Price            PriceRange     `json:"price"`
	Complexity       ComplexityTier `json:"complexity"`
	Tags             []string       `json:"tags,omitempty"`
	Popular          bool           `json:"popular"`
	Customizable     bool           `json:"customizable"`
	Active           bool           `json:"active"`
	Delivery         DeliveryInfo   `json:"delivery"`
}

// ServiceCategory groups services for display. One category owns many
// services.
type ServiceCategory struct {
	ID           string    `json:"id"`
	Name         Localized `json:"name"`
	Description  Localized `json:"description,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
	Active       bool      `json:"active"`
}
