package utils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	nonNumericRegex     = regexp.MustCompile(`[^\d.,-]`)
	commaDecimalTailRgx = regexp.MustCompile(`,\d{1,2}$`)
)

// ParseDecimal reads a locale-formatted amount such as "1.234,56", "1,234.56"
// or "12.50 EUR". Blank input, a bare "-" and anything that does not form a
// number after cleanup yield an invalid NullDecimal.
func ParseDecimal(s string) decimal.NullDecimal {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "-" {
		return decimal.NullDecimal{}
	}

	clean := nonNumericRegex.ReplaceAllString(s, "")
	hasComma := strings.Contains(clean, ",")
	hasDot := strings.Contains(clean, ".")

	switch {
	case hasComma && hasDot:
		// The right-most separator is the decimal point.
		if strings.LastIndex(clean, ",") > strings.LastIndex(clean, ".") {
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.ReplaceAll(clean, ",", ".")
		} else {
			clean = strings.ReplaceAll(clean, ",", "")
		}
	case hasComma:
		if commaDecimalTailRgx.MatchString(clean) {
			clean = strings.ReplaceAll(clean, ",", ".")
		} else {
			clean = strings.ReplaceAll(clean, ",", "")
		}
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
