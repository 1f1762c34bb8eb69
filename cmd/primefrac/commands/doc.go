// Package commands implements the primefrac CLI: flag and configuration
// handling, the interactive prompt, and dispatch into the calculation
// service. An argument containing a decimal point is reduced to a
// fraction; anything else is factorized.
package commands
