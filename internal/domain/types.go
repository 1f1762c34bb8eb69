package domain

// PrimeList is the ordered prime table produced by the sieve: strictly
// increasing, starting at 2, containing exactly the primes up to the
// configured bound. Built once per run and read-only afterwards.
type PrimeList []int64

// Factors is a prime factor multiset in non-decreasing order. The product
// of its elements equals the factorized integer. The factorization of 1
// is the single-element multiset [1] so downstream products never operate
// on an empty sequence.
type Factors []int64

// PrimePower is one term of an exponent-grouped factorization, e.g. 2^3.
type PrimePower struct {
	Prime int64
	Exp   int64
}

// Fraction is an integer ratio. The denominator is a power of ten until
// reduction brings the pair to lowest terms.
type Fraction struct {
	Numerator   int64
	Denominator int64
}
