package pricing

import (
	"strconv"

	"dubiqo_quotes/internal/domain/entities"
)

// FormatRupees renders a whole-rupee amount using the Indian numbering system
// (e.g. ₹1,23,456).
func FormatRupees(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	out := "₹" + applyIndianGrouping(strconv.FormatInt(amount, 10))
	if negative {
		out = "-" + out
	}
	return out
}

// FormatRange renders an estimate as "₹min - ₹max".
func FormatRange(e entities.PriceEstimate) string {
	return FormatRupees(e.MinPrice) + " - " + FormatRupees(e.MaxPrice)
}

// applyIndianGrouping keeps the last three digits together and groups the
// rest in pairs.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}
	return result
}
