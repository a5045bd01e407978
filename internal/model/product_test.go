package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedText_In(t *testing.T) {
	text := LocalizedText{"en": "Industrial Pump", "ar": "مضخة صناعية"}

	assert.Equal(t, "Industrial Pump", text.In("en"))
	assert.Equal(t, "مضخة صناعية", text.In("ar"))
	// Missing languages fall back to English
	assert.Equal(t, "Industrial Pump", text.In("zh"))
	assert.Equal(t, "Industrial Pump", text.In(""))
}

func TestProduct_Validate(t *testing.T) {
	old := 60.0
	valid := Product{
		ID:       "p1",
		Name:     LocalizedText{"en": "Industrial Pump"},
		Price:    25,
		OldPrice: &old,
		MOQ:      10,
		Stock:    500,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Product)
		code   string
	}{
		{"zero price", func(p *Product) { p.Price = 0 }, ErrCodeInvalidPrice},
		{"negative price", func(p *Product) { p.Price = -5 }, ErrCodeInvalidPrice},
		{"zero moq", func(p *Product) { p.MOQ = 0 }, ErrCodeInvalidMOQ},
		{"old price not above price", func(p *Product) { bad := 25.0; p.OldPrice = &bad }, ErrCodeInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)

			err := p.Validate()
			require.Error(t, err)
			var domainErr *DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.code, domainErr.Code)
		})
	}
}
