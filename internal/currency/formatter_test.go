package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_USD(t *testing.T) {
	us, ok := DefaultTable().Lookup("US")
	require.True(t, ok)

	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"small amount keeps cents", 25, "$25.00"},
		{"fractional cents", 9.5, "$9.50"},
		{"boundary below 100", 99.99, "$99.99"},
		{"at 100 drops cents", 100, "$100"},
		{"large amount grouped", 12500, "$12,500"},
		{"seven figures grouped", 1234567, "$1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.amount, us))
		})
	}
}

func TestFormat_ConvertedCurrency(t *testing.T) {
	table := DefaultTable()

	sa, ok := table.Lookup("SA")
	require.True(t, ok)
	cn, ok := table.Lookup("CN")
	require.True(t, ok)
	vn, ok := table.Lookup("VN")
	require.True(t, ok)

	tests := []struct {
		name     string
		amount   float64
		country  Country
		expected string
	}{
		{"SAR whole units with trailing symbol", 25, sa, "94 ر.س"},
		{"SAR rounds half to even", 10, sa, "38 ر.س"},
		{"CNY conversion", 100, cn, "720 ¥"},
		{"VND large rate grouped", 10, vn, "245,000 ₫"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.amount, tt.country))
		})
	}
}

func TestFormat_Deterministic(t *testing.T) {
	sa, ok := DefaultTable().Lookup("SA")
	require.True(t, ok)

	first := Format(1234.56, sa)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Format(1234.56, sa))
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"1000000", "1,000,000"},
		{"1234.56", "1,234.56"},
		{"-12345", "-12,345"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, groupThousands(tt.in))
	}
}
