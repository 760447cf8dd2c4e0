package shopping

import (
	"regexp"
	"strconv"
	"strings"
)

// Groups of 2 or 3 digits cover both western (1,234,567) and Indian
// lakh-style (1,23,456) separators
var priceRe = regexp.MustCompile(`[0-9]+(?:,[0-9]{2,3})*(?:\.[0-9]+)?`)

// ExtractPrice parses a human-readable price string ("₹1,299.00",
// "Rs. 2,499", "$59.99") into a numeric amount. Returns 0 when no
// number can be found.
func ExtractPrice(s string) float64 {
	match := priceRe.FindString(s)
	if match == "" {
		return 0
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0
	}
	return value
}
