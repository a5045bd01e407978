package currency

import (
	"context"
)

// Country describes a supported market: its currency, the exchange rate
// relative to the base currency (USD), and the default language.
type Country struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	NameAr        string  `json:"nameAr,omitempty"`
	Currency      string  `json:"currency"`
	Symbol        string  `json:"symbol"`
	Rate          float64 `json:"rate"`
	Lang          string  `json:"lang"`
	Manufacturing bool    `json:"manufacturing,omitempty"`
}

// Table provides lookup over the set of supported countries.
type Table interface {
	// Lookup returns the country for the given ISO code.
	Lookup(code string) (Country, bool)

	// Codes returns all supported country codes.
	Codes() []string

	// Size returns the number of countries in the table.
	Size() int
}

// Loader defines the interface for loading a country table.
type Loader interface {
	// Load reads a country table from the given path or key.
	Load(ctx context.Context, path string) (Table, error)
}
