package ratio

import (
	"errors"
	"strconv"
	"strings"

	"primefrac/internal/domain"
)

// maxPointSuffix bounds the substring from the decimal point onward,
// point included. Nine or more characters means at least eight fractional
// digits, enough to overflow the 64-bit products computed downstream once
// the integer part is folded back in.
const maxPointSuffix = 9

// ParseDecimal converts decimal text like "2.25" or ".12" into the exact
// unreduced integer ratio: the denominator is the power of ten matching
// the number of fractional digits and the numerator folds the integer
// part back in, so 2.25 becomes 225/100. An empty integer part means 0.
func ParseDecimal(text string) (domain.Fraction, error) {
	pos := strings.IndexByte(text, '.')
	if pos < 0 {
		return domain.Fraction{}, &domain.ParseError{Input: text, Reason: "no decimal point"}
	}
	if pos != 0 && len(text)-pos >= maxPointSuffix {
		return domain.Fraction{}, &domain.ParseError{Input: text, Reason: "too many fractional digits"}
	}

	whole := int64(0)
	if pos != 0 {
		m, err := strconv.ParseInt(text[:pos], 10, 64)
		if err != nil {
			return domain.Fraction{}, &domain.ParseError{Input: text, Reason: "integer part is not a number"}
		}
		whole = m
	}

	fracDigits := text[pos+1:]
	denominator := int64(1)
	for range fracDigits {
		denominator *= 10
	}

	numerator, err := strconv.ParseInt(fracDigits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return domain.Fraction{}, &domain.ParseError{Input: text, Reason: "too many fractional digits"}
		}
		return domain.Fraction{}, &domain.ParseError{Input: text, Reason: "fractional part is not a number"}
	}
	numerator += denominator * whole

	return domain.Fraction{Numerator: numerator, Denominator: denominator}, nil
}
