package app_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"primefrac/internal/app"
	"primefrac/internal/domain"
)

func TestNewWire(t *testing.T) {
	cfg := &app.Config{Environment: "development", Bound: 1000}

	var buf bytes.Buffer
	a, err := app.NewWire(cfg, &buf)
	require.NoError(t, err)
	require.NotNil(t, a.Calc)
	require.NotNil(t, a.Log)
	require.EqualValues(t, 2, a.Primes[0])

	fr, err := a.Calc.DecimalToFraction("0.12")
	require.NoError(t, err)
	require.Equal(t, domain.Fraction{Numerator: 3, Denominator: 25}, fr)
	require.Equal(t, "0.12 = 3/25\n", buf.String())
}

func TestNewWireWithoutOutput(t *testing.T) {
	cfg := &app.Config{Environment: "production", Bound: 100}

	a, err := app.NewWire(cfg, nil)
	require.NoError(t, err)

	terms, err := a.Calc.FactorizeNumber("64")
	require.NoError(t, err)
	require.Equal(t, []domain.PrimePower{{Prime: 2, Exp: 6}}, terms)
}
