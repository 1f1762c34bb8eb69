package factor

import (
	"primefrac/internal/domain"
)

// Factorize divides n by the table primes in ascending order and returns
// the multiset of prime factors, non-decreasing, whose product is n. The
// factorization of 1 is [1] by convention so callers never multiply an
// empty sequence.
//
// When n keeps a prime factor larger than the table bound, the factors
// found so far are returned together with a domain.IncompleteError
// carrying the residual; their product then falls short of n by exactly
// that residual.
func Factorize(n int64, primes domain.PrimeList) (domain.Factors, error) {
	if n == 1 {
		return domain.Factors{1}, nil
	}

	var factors domain.Factors
	for _, p := range primes {
		for n%p == 0 && n != 1 {
			factors = append(factors, p)
			n /= p
		}
	}

	if n != 1 {
		return factors, &domain.IncompleteError{Remaining: n}
	}
	return factors, nil
}

// Product multiplies a factor multiset back into a single integer. The
// identity is 1, so the conventional [1] multiset yields 1.
func Product(f domain.Factors) int64 {
	n := int64(1)
	for _, v := range f {
		n *= v
	}
	return n
}

// Exponents groups an ascending factor multiset into (prime, exponent)
// terms with unique, ascending primes.
func Exponents(f domain.Factors) []domain.PrimePower {
	var terms []domain.PrimePower
	for _, v := range f {
		if len(terms) > 0 && terms[len(terms)-1].Prime == v {
			terms[len(terms)-1].Exp++
			continue
		}
		terms = append(terms, domain.PrimePower{Prime: v, Exp: 1})
	}
	return terms
}
