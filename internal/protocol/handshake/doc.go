// Package handshake drives the five-message key exchange for each role.
//
// Both roles walk a fixed message order; any wrong-typed, out-of-order
// or undecodable message aborts that session only, with no secret
// produced and partial key material wiped. There is no retry,
// renegotiation or version negotiation.
//
// The peers are deliberately unauthenticated: an active
// man-in-the-middle can substitute its own parameters and keys. That is
// inherent to the protocol, not something this package defends against.
package handshake
