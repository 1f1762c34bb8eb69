// Package calc exposes the two top-level calculations to the CLI:
// factorizing an integer into exponent-grouped prime powers and reducing
// a decimal to a lowest-terms fraction. It validates textual input at the
// boundary so the numeric core only ever sees in-range, non-zero numbers.
package calc
