package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders a base-currency (USD) amount for display in the given
// country. It is a pure derivation: the same (amount, rate, symbol) triple
// always produces the same string, and it must be recomputed whenever the
// active country changes, never cached.
//
// Base currency keeps 2 decimals below 100 and 0 at or above; every other
// currency converts at the country rate and rounds half-to-even to whole
// units, with the symbol trailing the amount.
func Format(amount float64, c Country) string {
	if c.Currency == "USD" {
		if amount < 100 {
			return "$" + groupThousands(strconv.FormatFloat(amount, 'f', 2, 64))
		}
		return "$" + groupThousands(strconv.FormatFloat(math.RoundToEven(amount), 'f', 0, 64))
	}

	converted := math.RoundToEven(amount * c.Rate)
	return fmt.Sprintf("%s %s", groupThousands(strconv.FormatFloat(converted, 'f', 0, 64)), c.Symbol)
}

// groupThousands inserts comma separators into the integer part of a
// formatted decimal number.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}

	out := intPart + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
