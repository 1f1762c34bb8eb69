package calc_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"primefrac/internal/domain"
	"primefrac/internal/report"
	"primefrac/internal/services/calc"
	"primefrac/internal/sieve"
)

var primes = sieve.Generate(sieve.DefaultBound, nil)

func TestDecimalToFraction(t *testing.T) {
	svc := calc.New(primes, nil, nil)

	cases := []struct {
		in   string
		want domain.Fraction
	}{
		{in: "0.12", want: domain.Fraction{Numerator: 3, Denominator: 25}},
		{in: ".5", want: domain.Fraction{Numerator: 1, Denominator: 2}},
		{in: "2.25", want: domain.Fraction{Numerator: 9, Denominator: 4}},
		{in: "0.3", want: domain.Fraction{Numerator: 3, Denominator: 10}},
	}
	for _, c := range cases {
		fr, err := svc.DecimalToFraction(c.in)
		require.NoError(t, err, c.in)
		require.Equal(t, c.want, fr, c.in)
	}
}

func TestDecimalToFractionRejectsNonPositive(t *testing.T) {
	svc := calc.New(primes, nil, nil)

	// Zero must be caught at the boundary: the factorizer would divide
	// it forever. Negatives are rejected for the same reason as in
	// FactorizeNumber.
	for _, in := range []string{"0.0", ".0", "0.000", "-2.25", "-0.5"} {
		errc := make(chan error, 1)
		go func() {
			_, err := svc.DecimalToFraction(in)
			errc <- err
		}()
		select {
		case err := <-errc:
			require.ErrorIs(t, err, domain.ErrParse, in)
		case <-time.After(5 * time.Second):
			t.Fatalf("DecimalToFraction(%q) did not return", in)
		}
	}
}

func TestDecimalToFractionRejectsLongTail(t *testing.T) {
	svc := calc.New(primes, nil, nil)

	_, err := svc.DecimalToFraction("0.12345678")
	require.ErrorIs(t, err, domain.ErrParse)
}

func TestFactorizeNumber(t *testing.T) {
	svc := calc.New(primes, nil, nil)

	terms, err := svc.FactorizeNumber("13112")
	require.NoError(t, err)
	require.Equal(t, []domain.PrimePower{
		{Prime: 2, Exp: 3},
		{Prime: 11, Exp: 1},
		{Prime: 149, Exp: 1},
	}, terms)

	terms, err = svc.FactorizeNumber("1231")
	require.NoError(t, err)
	require.Equal(t, []domain.PrimePower{{Prime: 1231, Exp: 1}}, terms)

	terms, err = svc.FactorizeNumber("1")
	require.NoError(t, err)
	require.Equal(t, []domain.PrimePower{{Prime: 1, Exp: 1}}, terms)
}

func TestFactorizeNumberBoundaryValidation(t *testing.T) {
	svc := calc.New(primes, nil, nil)

	cases := []struct {
		in   string
		want error
	}{
		{in: "abc", want: domain.ErrParse},
		{in: "", want: domain.ErrParse},
		{in: "0", want: domain.ErrParse},
		{in: "-8", want: domain.ErrParse},
		{in: "9223372036854775808", want: domain.ErrOverflow},
	}
	for _, c := range cases {
		_, err := svc.FactorizeNumber(c.in)
		require.ErrorIs(t, err, c.want, c.in)
	}
}

func TestFactorizeNumberIncompleteTable(t *testing.T) {
	small := sieve.Generate(100, nil)
	svc := calc.New(small, nil, nil)

	_, err := svc.FactorizeNumber("101")
	require.ErrorIs(t, err, domain.ErrIncomplete)

	var inc *domain.IncompleteError
	require.ErrorAs(t, err, &inc)
	require.EqualValues(t, 101, inc.Remaining)
}

func TestRendering(t *testing.T) {
	var buf bytes.Buffer
	svc := calc.New(primes, nil, report.New(&buf))

	_, err := svc.FactorizeNumber("13112")
	require.NoError(t, err)
	require.Contains(t, buf.String(), "2^3 * 11 * 149")

	buf.Reset()
	_, err = svc.DecimalToFraction("2.25")
	require.NoError(t, err)
	require.Equal(t, "2.25 = 9/4 ==> 2 1/4\n", buf.String())
}

func TestNilFormatterHasNoSideEffects(t *testing.T) {
	svc := calc.New(primes, nil, nil)

	fr, err := svc.DecimalToFraction("0.12")
	require.NoError(t, err)
	require.Equal(t, domain.Fraction{Numerator: 3, Denominator: 25}, fr)
}
