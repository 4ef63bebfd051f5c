package risk

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^([+-]?)(\d+\.?\d*|\.\d+)(?:[eE]([+-]?\d{1,3}))?`)
	nonNumeric  = regexp.MustCompile(`[^0-9.-]+`)

	largeAmount = decimal.NewFromInt(1000)
)

const leadingSpace = " \t\n\r\v\f\u00a0\ufeff"

// leadingInt reads the integer prefix of s the way form amounts like
// "1500 USD" are read by the browser: "1500". ok is false when s has no
// leading digits.
func leadingInt(s string) (decimal.Decimal, bool) {
	m := intPrefix.FindString(strings.TrimLeft(s, leadingSpace))
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(m, "+"))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// leadingFloat reads the decimal prefix of s, accepting forms such as
// "12.5", ".5", "5." and "1e3".
func leadingFloat(s string) (decimal.Decimal, bool) {
	m := floatPrefix.FindStringSubmatch(strings.TrimLeft(s, leadingSpace))
	if m == nil {
		return decimal.Zero, false
	}
	sign, mantissa, exp := m[1], m[2], m[3]
	mantissa = strings.TrimSuffix(mantissa, ".")
	if strings.HasPrefix(mantissa, ".") {
		mantissa = "0" + mantissa
	}
	d, err := decimal.NewFromString(mantissa)
	if err != nil {
		return decimal.Zero, false
	}
	if exp != "" {
		e, err := decimal.NewFromString(strings.TrimPrefix(exp, "+"))
		if err != nil {
			return decimal.Zero, false
		}
		d = d.Shift(int32(e.IntPart()))
	}
	if sign == "-" {
		d = d.Neg()
	}
	return d, true
}

// currencyAmount strips everything but digits, dots and minus signs before
// reading the amount, so "$5,000" reads as 5000.
func currencyAmount(s string) (decimal.Decimal, bool) {
	return leadingFloat(nonNumeric.ReplaceAllString(s, ""))
}

func exceeds(d decimal.Decimal, ok bool, limit decimal.Decimal) bool {
	return ok && d.GreaterThan(limit)
}
