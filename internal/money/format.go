package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount as a dollar string with thousands
// grouping and exactly two decimal places, e.g. 1234.56 -> "$1,234.56".
func FormatCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)

	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	whole, cents := s[:dot], s[dot+1:]

	formatted := "$" + groupThousands(whole) + "." + cents
	if negative {
		formatted = "-" + formatted
	}
	return formatted
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(n + (n-1)/3)

	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
