package payment

import "math"

// DollarsToCents converts a user-facing decimal dollar amount to integer
// cents. This is the only place dollars are seen; everything past the HTTP
// boundary works in cents. math.Round keeps amounts like 4.35 from truncating
// to 434 through float representation error.
func DollarsToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}
