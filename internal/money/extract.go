// Package money provides monetary amount extraction and currency formatting.
package money

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern matches an optional dollar sign, digits optionally grouped
// in thousands by commas, and an optional two-decimal fractional part.
var amountPattern = regexp.MustCompile(`\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`)

// ExtractAmounts scans raw text for monetary values and returns them in
// order of first appearance, duplicates preserved. Tokens that fail numeric
// parsing are silently skipped; an absent match yields an empty slice.
func ExtractAmounts(text string) []float64 {
	matches := amountPattern.FindAllStringSubmatch(text, -1)
	amounts := make([]float64, 0, len(matches))

	for _, m := range matches {
		raw := strings.ReplaceAll(m[1], ",", "")
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		amounts = append(amounts, amount)
	}

	return amounts
}
