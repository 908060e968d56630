// Package amount normalizes numeric strings scraped from statement
// PDFs into decimal values.
package amount

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a scraped amount string to a decimal.
//
// It strips currency markers, thousands separators and surrounding
// whitespace, and converts accounting-negative notation "(1,234.50)"
// into a leading minus sign. Anything that still fails to parse
// yields zero: extraction is best-effort and one bad field must never
// abort a batch.
func Parse(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" || s == "0.00" {
		return decimal.Zero
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	if strings.Contains(s, "(") && strings.Contains(s, ")") {
		s = "-" + strings.ReplaceAll(strings.ReplaceAll(s, "(", ""), ")", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
