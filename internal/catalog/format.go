package catalog

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"studio_orders/internal/domain/entities"
)

// FormatPriceRange renders a price range for the given locale, collapsing
// to a single value when min equals max. Unknown locales fall back to
// English, unknown currencies to USD.
func (c *Catalog) FormatPriceRange(r entities.PriceRange, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	unit, err := currency.ParseISO(r.Currency)
	if err != nil {
		unit = currency.USD
	}

	p := message.NewPrinter(tag)
	if r.Min == r.Max {
		return p.Sprint(currency.Symbol(unit.Amount(r.Min)))
	}
	return p.Sprintf("%v - %v", currency.Symbol(unit.Amount(r.Min)), currency.Symbol(unit.Amount(r.Max)))
}
