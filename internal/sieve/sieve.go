package sieve

import (
	"time"

	"go.uber.org/zap"

	"primefrac/internal/domain"
)

// DefaultBound is the upper limit of the prime table when none is
// configured.
const DefaultBound = 999999

// Generate builds the table of all primes up to bound, ascending. The
// result is a deterministic function of bound.
//
// log, when non-nil, receives a debug record with the prime count, the
// elapsed time and the ten largest primes found.
func Generate(bound int64, log *zap.Logger) domain.PrimeList {
	if bound < 2 {
		return nil
	}

	start := time.Now()

	candidates := make([]int64, bound)
	for i := range candidates {
		candidates[i] = int64(i) + 1
	}

	for i := int64(2); i < bound; i++ {
		for j := int64(2); j < bound; j++ {
			if i*j > bound {
				break // every later product is larger still
			}
			candidates[i*j-1] = 0
		}
	}

	primes := make(domain.PrimeList, 0, bound/10)
	for _, n := range candidates {
		if n > 1 { // 1 is not a prime
			primes = append(primes, n)
		}
	}

	if log != nil {
		top := primes
		if len(top) > 10 {
			top = top[len(top)-10:]
		}
		log.Debug("prime table built",
			zap.Int64("bound", bound),
			zap.Int("primes", len(primes)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Int64s("largest", top),
		)
	}

	return primes
}
