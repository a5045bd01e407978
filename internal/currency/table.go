package currency

import "sort"

// mapTable implements Table using a map for O(1) lookups.
type mapTable struct {
	countries map[string]Country
}

// NewTable creates a table from the given countries. Entries with a
// non-positive rate or empty code are skipped.
func NewTable(countries []Country) Table {
	t := &mapTable{countries: make(map[string]Country, len(countries))}
	for _, c := range countries {
		if c.Code == "" || c.Rate <= 0 {
			continue
		}
		t.countries[c.Code] = c
	}
	return t
}

// DefaultTable returns the built-in country table. Rates are static
// reference values relative to USD.
func DefaultTable() Table {
	return NewTable(defaultCountries())
}

func defaultCountries() []Country {
	return []Country{
		{Code: "SA", Name: "Saudi Arabia", NameAr: "السعودية", Currency: "SAR", Symbol: "ر.س", Rate: 3.75, Lang: "ar"},
		{Code: "AE", Name: "UAE", NameAr: "الإمارات", Currency: "AED", Symbol: "د.إ", Rate: 3.67, Lang: "ar"},
		{Code: "US", Name: "USA", NameAr: "أمريكا", Currency: "USD", Symbol: "$", Rate: 1, Lang: "en"},
		{Code: "CN", Name: "China", NameAr: "الصين", Currency: "CNY", Symbol: "¥", Rate: 7.2, Lang: "zh", Manufacturing: true},
		{Code: "TR", Name: "Turkey", NameAr: "تركيا", Currency: "TRY", Symbol: "₺", Rate: 32, Lang: "tr", Manufacturing: true},
		{Code: "IN", Name: "India", NameAr: "الهند", Currency: "INR", Symbol: "₹", Rate: 83, Lang: "hi", Manufacturing: true},
		{Code: "BD", Name: "Bangladesh", NameAr: "بنجلاديش", Currency: "BDT", Symbol: "৳", Rate: 110, Lang: "bn", Manufacturing: true},
		{Code: "VN", Name: "Vietnam", NameAr: "فيتنام", Currency: "VND", Symbol: "₫", Rate: 24500, Lang: "vi", Manufacturing: true},
		{Code: "ID", Name: "Indonesia", NameAr: "إندونيسيا", Currency: "IDR", Symbol: "Rp", Rate: 15700, Lang: "id", Manufacturing: true},
		{Code: "BR", Name: "Brazil", NameAr: "البرازيل", Currency: "BRL", Symbol: "R$", Rate: 5, Lang: "pt"},
		{Code: "RU", Name: "Russia", NameAr: "روسيا", Currency: "RUB", Symbol: "₽", Rate: 92, Lang: "ru"},
		{Code: "DE", Name: "Germany", NameAr: "ألمانيا", Currency: "EUR", Symbol: "€", Rate: 0.92, Lang: "de"},
		{Code: "JP", Name: "Japan", NameAr: "اليابان", Currency: "JPY", Symbol: "¥", Rate: 150, Lang: "ja"},
		{Code: "GB", Name: "UK", NameAr: "بريطانيا", Currency: "GBP", Symbol: "£", Rate: 0.79, Lang: "en"},
		{Code: "EG", Name: "Egypt", NameAr: "مصر", Currency: "EGP", Symbol: "ج.م", Rate: 48, Lang: "ar"},
		{Code: "KW", Name: "Kuwait", NameAr: "الكويت", Currency: "KWD", Symbol: "د.ك", Rate: 0.31, Lang: "ar"},
	}
}

// Lookup returns the country for the given ISO code.
func (t *mapTable) Lookup(code string) (Country, bool) {
	c, ok := t.countries[code]
	return c, ok
}

// Codes returns all supported country codes in sorted order.
func (t *mapTable) Codes() []string {
	codes := make([]string, 0, len(t.countries))
	for code := range t.countries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Size returns the number of countries in the table.
func (t *mapTable) Size() int {
	return len(t.countries)
}
