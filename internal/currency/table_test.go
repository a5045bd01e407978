package currency

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	assert.Equal(t, 16, table.Size())

	us, ok := table.Lookup("US")
	require.True(t, ok)
	assert.Equal(t, "USD", us.Currency)
	assert.Equal(t, float64(1), us.Rate)

	sa, ok := table.Lookup("SA")
	require.True(t, ok)
	assert.Equal(t, "SAR", sa.Currency)
	assert.Equal(t, 3.75, sa.Rate)
	assert.Equal(t, "ar", sa.Lang)

	_, ok = table.Lookup("XX")
	assert.False(t, ok)
}

func TestNewTable_SkipsInvalidEntries(t *testing.T) {
	table := NewTable([]Country{
		{Code: "US", Currency: "USD", Symbol: "$", Rate: 1},
		{Code: "", Currency: "EUR", Symbol: "€", Rate: 0.92},
		{Code: "ZZ", Currency: "ZZD", Symbol: "z", Rate: 0},
		{Code: "YY", Currency: "YYD", Symbol: "y", Rate: -3},
	})

	assert.Equal(t, 1, table.Size())
	_, ok := table.Lookup("US")
	assert.True(t, ok)
	_, ok = table.Lookup("ZZ")
	assert.False(t, ok)
}

func TestTable_CodesSorted(t *testing.T) {
	codes := DefaultTable().Codes()

	assert.Len(t, codes, 16)
	assert.True(t, sort.StringsAreSorted(codes))
	assert.Contains(t, codes, "SA")
	assert.Contains(t, codes, "US")
}
