package calc

import (
	"errors"
	"strconv"

	"go.uber.org/zap"

	"primefrac/internal/domain"
	"primefrac/internal/factor"
	"primefrac/internal/ratio"
	"primefrac/internal/report"
)

// Service runs the top-level calculations against a fixed prime table.
// The formatter is optional: with a nil formatter results are returned
// without rendering side effects.
type Service struct {
	primes domain.PrimeList
	log    *zap.Logger
	out    *report.Formatter
}

// New constructs a Service over the given prime table.
func New(primes domain.PrimeList, log *zap.Logger, out *report.Formatter) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{primes: primes, log: log, out: out}
}

// DecimalToFraction reduces decimal text to a lowest-terms fraction:
// "0.12" becomes 3/25. The decimal is first made an exact integer ratio,
// both sides are factorized independently, the common factors are
// cancelled, and the remainders are multiplied back together.
func (s *Service) DecimalToFraction(text string) (domain.Fraction, error) {
	fr, err := ratio.ParseDecimal(text)
	if err != nil {
		return domain.Fraction{}, err
	}
	// Zero or negative numerators never reach the factorizer: zero would
	// divide forever and negatives leave a meaningless residual.
	if fr.Numerator <= 0 {
		return domain.Fraction{}, &domain.ParseError{Input: text, Reason: "value must be positive"}
	}
	s.log.Debug("decimal point removed by multiplication",
		zap.Int64("numerator", fr.Numerator),
		zap.Int64("denominator", fr.Denominator))

	numFactors, err := factor.Factorize(fr.Numerator, s.primes)
	if err != nil {
		return domain.Fraction{}, err
	}
	denFactors, err := factor.Factorize(fr.Denominator, s.primes)
	if err != nil {
		return domain.Fraction{}, err
	}
	s.log.Debug("both sides factorized",
		zap.Int64s("numerator", numFactors),
		zap.Int64s("denominator", denFactors))

	num, den := ratio.Reduce(numFactors, denFactors)
	s.log.Debug("common factors cancelled",
		zap.Int64s("numerator", num),
		zap.Int64s("denominator", den))

	reduced := domain.Fraction{
		Numerator:   factor.Product(num),
		Denominator: factor.Product(den),
	}
	s.out.Fraction(text, reduced)
	return reduced, nil
}

// FactorizeNumber factorizes integer text into exponent-grouped prime
// powers: "13112" becomes 2^3 * 11 * 149. Zero, negative, non-numeric and
// out-of-range text are rejected before the table is consulted.
func (s *Service) FactorizeNumber(text string) ([]domain.PrimePower, error) {
	n, err := parseOperand(text)
	if err != nil {
		return nil, err
	}

	factors, err := factor.Factorize(n, s.primes)
	if err != nil {
		var inc *domain.IncompleteError
		if errors.As(err, &inc) {
			s.out.Incomplete(n, inc.Remaining)
		}
		return nil, err
	}

	terms := factor.Exponents(factors)
	s.out.Factorization(n, terms)
	return terms, nil
}

// parseOperand validates integer text at the boundary.
func parseOperand(text string) (int64, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &domain.OverflowError{Input: text}
		}
		return 0, &domain.ParseError{Input: text, Reason: "not an integer"}
	}
	if n == 0 {
		return 0, &domain.ParseError{Input: text, Reason: "zero cannot be factorized"}
	}
	if n < 0 {
		return 0, &domain.ParseError{Input: text, Reason: "negative numbers cannot be factorized"}
	}
	return n, nil
}
