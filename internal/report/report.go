package report

import (
	"fmt"
	"io"
	"strings"

	"primefrac/internal/domain"
)

// Formatter writes human-readable renderings of engine results. A nil
// *Formatter is valid and renders nothing, which is how callers observe
// pure results without output side effects.
type Formatter struct {
	w io.Writer
}

// New returns a Formatter writing to w.
func New(w io.Writer) *Formatter { return &Formatter{w: w} }

// Factorization prints the exponent-grouped form of a factorization,
// e.g. "13112 = 2^3 * 11 * 149". Terms with exponent 1 print the bare
// prime.
func (f *Formatter) Factorization(n int64, terms []domain.PrimePower) {
	if f == nil {
		return
	}
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		if t.Exp != 1 {
			parts = append(parts, fmt.Sprintf("%d^%d", t.Prime, t.Exp))
		} else {
			parts = append(parts, fmt.Sprintf("%d", t.Prime))
		}
	}
	fmt.Fprintf(f.w, "%10d = %s\n", n, strings.Join(parts, " * "))
}

// Fraction prints a reduced fraction, adding the mixed-number form when
// the value exceeds one: "2.25 = 9/4 ==> 2 1/4".
func (f *Formatter) Fraction(text string, fr domain.Fraction) {
	if f == nil {
		return
	}
	t, n := fr.Numerator, fr.Denominator
	if t > n {
		fmt.Fprintf(f.w, "%s = %d/%d ==> %d %d/%d\n", text, t, n, t/n, t-(t/n)*n, n)
	} else {
		fmt.Fprintf(f.w, "%s = %d/%d\n", text, t, n)
	}
}

// Incomplete warns that a factorization stopped short of the input.
func (f *Formatter) Incomplete(n, remaining int64) {
	if f == nil {
		return
	}
	fmt.Fprintf(f.w, "%d has a prime factor above the table bound; %d is left unfactored\n", n, remaining)
}

// Primes prints the table size and the ten largest primes in it, largest
// first.
func (f *Formatter) Primes(primes domain.PrimeList) {
	if f == nil {
		return
	}
	top := primes
	if len(top) > 10 {
		top = top[len(top)-10:]
	}
	fmt.Fprintf(f.w, "%d primes in the table\nlargest:", len(primes))
	for i := len(top) - 1; i >= 0; i-- {
		fmt.Fprintf(f.w, " %d", top[i])
	}
	fmt.Fprintln(f.w)
}
