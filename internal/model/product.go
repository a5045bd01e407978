package model

import "time"

// LocalizedText holds per-language variants of a display string.
// The "en" entry is always present; other languages are optional.
type LocalizedText map[string]string

// In returns the variant for the given language code, falling back to English.
func (t LocalizedText) In(lang string) string {
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	return t["en"]
}

// Product represents a marketplace listing. Prices are stored in the base
// currency (USD); display conversion happens at render time.
type Product struct {
	ID            string        `json:"id" db:"id"`
	Name          LocalizedText `json:"name" db:"name"`
	Description   LocalizedText `json:"description,omitempty" db:"description"`
	Price         float64       `json:"price" db:"price"`
	OldPrice      *float64      `json:"oldPrice,omitempty" db:"old_price"`
	MOQ           int           `json:"moq" db:"moq"`
	Stock         int           `json:"stock" db:"stock"`
	Category      string        `json:"category" db:"category"`
	Images        []string      `json:"images" db:"images"`
	SellerID      string        `json:"sellerId,omitempty" db:"seller_id"`
	SellerName    string        `json:"sellerName,omitempty" db:"seller_name"`
	SellerCountry string        `json:"sellerCountry,omitempty" db:"seller_country"`
	Rating        float64       `json:"rating" db:"rating"`
	Reviews       int           `json:"reviews" db:"reviews"`
	Sold          int           `json:"sold" db:"sold"`
	Verified      bool          `json:"verified" db:"verified"`
	Featured      bool          `json:"featured" db:"featured"`
	Origin        string        `json:"origin,omitempty" db:"origin"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}

// Validate checks the invariants a listing must satisfy: a positive price,
// an MOQ of at least one, and an old price (if present) strictly above the
// current price.
func (p *Product) Validate() error {
	if p.Price <= 0 {
		return NewDomainError(ErrCodeInvalidPrice, "product price must be greater than zero")
	}
	if p.MOQ < 1 {
		return NewDomainError(ErrCodeInvalidMOQ, "minimum order quantity must be at least 1")
	}
	if p.OldPrice != nil && *p.OldPrice <= p.Price {
		return NewDomainError(ErrCodeInvalidPrice, "old price must be greater than current price")
	}
	return nil
}
