// Package report renders engine results for a human: factor lists,
// exponent notation and reduced fractions with their mixed-number form.
// It is the only place the engine's output formatting lives; the numeric
// packages never write anywhere themselves.
package report
