// Package factor performs trial division against the prime table and the
// small arithmetic over factor multisets that the rest of the engine
// composes: recombining a multiset into its product and grouping it into
// exponent form for display.
package factor
