// Package domain defines the core data models and the error taxonomy
// shared across the app. It contains plain types only.
package domain
