// Package ratio turns decimal text into an exact integer ratio and
// cancels the common prime factors of two factor multisets.
//
// Parsing never touches floating point: "2.25" becomes 225/100 by digit
// counting, so the ratio equals the decimal exactly. Reduction works on
// the prime factor multisets of the two sides rather than on a gcd: the
// ordered multiset intersection is removed from both, which respects
// multiplicity (a 2 present twice on both sides cancels twice).
package ratio
