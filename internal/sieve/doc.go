// Package sieve builds the bounded prime table the rest of the engine
// factorizes against.
//
// The algorithm is the multiplicative-mark form of the Sieve of
// Eratosthenes: lay out the integers 1..Bound, strike every product i*j
// with both factors at least 2, and collect the survivors above 1. A
// value escapes marking exactly when it has no two-factor decomposition,
// which is the definition of a prime. The inner loop stops at the first
// product beyond the bound because products only grow with j.
//
// Factorization downstream is complete only for inputs whose prime
// factors all lie within the bound; factor.Factorize surfaces the
// residual when one does not.
package sieve
