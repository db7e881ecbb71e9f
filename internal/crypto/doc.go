// Package crypto implements the number-theoretic primitives behind the
// exchange.
//
// Contents
//
//   - Miller-Rabin probable-prime testing (IsProbablePrime)
//   - Square-and-multiply modular exponentiation (ModPow)
//   - Group-parameter generation: a random prime and a subgroup
//     generator (GenerateGroupParameters)
//   - Per-session key pairs and shared-secret derivation (NewKeyPair,
//     SharedSecret)
//   - Short fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Arithmetic is math/big throughout and is not constant-time. Callers
// should treat secret exponents and shared secrets as sensitive and
// wipe them via the domain types when the session ends.
package crypto
