package funding

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// MinorUnits converts a major-unit amount to the processor's minor units
// (cents), rounding half away from zero. This conversion happens exactly once,
// at the payment processor boundary.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FormatAmount renders a US dollar display string with digit grouping,
// e.g. 32000 -> "$32,000.00".
func FormatAmount(amount float64) string {
	return usd.Sprintf("$%.2f", amount)
}
