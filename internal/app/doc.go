// Package app loads configuration and wires the engine together: logger,
// prime table, formatter and the calculation service the CLI talks to.
package app
