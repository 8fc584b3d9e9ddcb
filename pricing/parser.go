package pricing

import (
	"math"
	"regexp"
	"strconv"

	"paddleoffer/models"
)

// OfferRate is the fixed fraction of the reference midpoint paid out
const OfferRate = 0.5

// decimalPattern matches prices written with exactly two decimal places,
// e.g. "189.99" inside "$189.99" or "Was $220.00 Now $189.99".
var decimalPattern = regexp.MustCompile(`[0-9]+\.[0-9]{2}`)

// Parse extracts every decimal-formatted number from a listing's raw price
// text and returns the low/high/midpoint triple. Returns nil when the text
// contains no parsable price, which callers treat as "no offer" rather than
// an error. Single prices and was/now or range formats are handled uniformly.
func Parse(priceText string) *models.ParsedPrice {
	matches := decimalPattern.FindAllString(priceText, -1)
	if len(matches) == 0 {
		return nil
	}

	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, m := range matches {
		value, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		if value < lo {
			lo = value
		}
		if value > hi {
			hi = value
		}
	}
	if lo > hi {
		return nil
	}

	return &models.ParsedPrice{
		Lo:  lo,
		Hi:  hi,
		Mid: (lo + hi) / 2,
	}
}

// Offer applies the fixed pricing policy to a reference midpoint
func Offer(mid float64) float64 {
	return RoundHalfUp(mid*OfferRate, 2)
}

// RoundHalfUp rounds to the given number of decimal places with half-up
// semantics, so 99.995 at two places becomes 100.00 rather than 99.99.
func RoundHalfUp(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Floor(value*shift+0.5) / shift
}
