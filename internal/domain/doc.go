// Package domain defines the data model shared across the exchange:
// group parameters, per-session key material, and session state.
// It contains plain types and small methods only.
package domain
