// Package billing implements the monetary arithmetic of the service.
//
// All amounts are integer cents (int64). Decimal strings only exist at the
// presentation boundary: ParseAmount converts user input into cents and
// FormatCents renders cents back with two decimals. Keeping the arithmetic
// in integers means totals do not drift however many lines a document has.
package billing

import (
	"errors"
	"fmt"
	"strings"

	"convoyage/internal/domain/entities"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Totals is the derived totals block of a document. Never stored on its
// own; recomputed from the line items on every edit.
type Totals struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	TaxCents      int64 `json:"tax_cents"`
	TotalCents    int64 `json:"total_cents"`
}

// LineTotal derives the line amount from its operands. Callers must never
// persist a line total that did not come from here.
func LineTotal(quantity, unitPriceCents int64) int64 {
	return quantity * unitPriceCents
}

// NormalizeItems recomputes every LineTotalCents from its operands and
// returns the normalized slice. Negative quantities or prices are rejected.
func NormalizeItems(items []entities.LineItem) ([]entities.LineItem, error) {
	out := make([]entities.LineItem, len(items))
	for i, it := range items {
		if it.Quantity < 0 {
			return nil, ErrInvalidQuantity
		}
		if it.UnitPriceCents < 0 {
			return nil, ErrInvalidAmount
		}
		it.LineTotalCents = LineTotal(it.Quantity, it.UnitPriceCents)
		out[i] = it
	}
	return out, nil
}

// ComputeTotals sums normalized line items and applies the tax rate.
// Tax is rounded half-up to the nearest cent. An empty item list yields
// zero totals.
func ComputeTotals(items []entities.LineItem, taxRatePercent int64) Totals {
	var subtotal int64
	for _, it := range items {
		subtotal += LineTotal(it.Quantity, it.UnitPriceCents)
	}
	tax := roundedPercent(subtotal, taxRatePercent)
	return Totals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
	}
}

// roundedPercent computes amount × rate / 100 in cents, half-up.
func roundedPercent(amountCents, ratePercent int64) int64 {
	num := amountCents * ratePercent
	q := num / 100
	if num%100 >= 50 {
		q++
	}
	return q
}

// ParseAmount converts a decimal string such as "12.34" (or "12,34",
// the FR convention) into cents. At most two decimal places are accepted.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, ErrInvalidAmount
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, ErrInvalidAmount
	}
	if len(frac) > 2 {
		return 0, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}
	var cents int64
	for _, part := range []string{whole, frac} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return 0, ErrInvalidAmount
			}
			cents = cents*10 + int64(r-'0')
		}
	}
	if neg {
		cents = -cents
	}
	return cents, nil
}

// FormatCents renders cents as a two-decimal string for presentation.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
