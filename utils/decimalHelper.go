package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern accepts an optional currency symbol or short currency code
// prefix followed by one plain decimal number. A cell carrying anything
// else (notes, dates, phone numbers) is not a price.
var amountPattern = regexp.MustCompile(`^(?:[$€£¥]|[A-Za-z]{1,3})?\s*(-?[0-9]+(?:\.[0-9]+)?)$`)

// ParseAmount turns supplier-formatted price text into a decimal.
// Accepts common formats like:
// - "1,250.00"
// - "R 1,250.00"
// - "$ 890"
// - "-20,000"
//
// Only currency markers, thousands separators and surrounding whitespace
// are stripped; any other leftover character is a parse failure.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")

	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return decimal.NewFromInt(0), fmt.Errorf("invalid amount %q", raw)
	}
	val, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.NewFromInt(0), fmt.Errorf("invalid amount %q", raw)
	}
	return val, nil
}
