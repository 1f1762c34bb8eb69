// Package logger builds the zap logger the app logs through. The logger
// is threaded explicitly through the wiring; there is no package-level
// default and no ambient trace flag.
package logger
