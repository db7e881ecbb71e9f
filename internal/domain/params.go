package domain

import "math/big"

// GroupParameters is the public (p, g) pair both peers exponentiate
// under: P a probable prime, G a generator of a large subgroup mod P.
// A responder generates the pair once and shares it read-only across
// every session it services; it is never mutated after construction.
type GroupParameters struct {
	P *big.Int
	G *big.Int
}

// Valid reports whether the pair is structurally usable: p odd and
// greater than 4, and 1 < g < p-1. It does not re-run primality or the
// generator check; an initiator uses it to reject nonsense parameters
// before exponentiating.
func (gp GroupParameters) Valid() bool {
	if gp.P == nil || gp.G == nil {
		return false
	}
	if gp.P.Cmp(big.NewInt(4)) <= 0 || gp.P.Bit(0) == 0 {
		return false
	}
	pMinus1 := new(big.Int).Sub(gp.P, big.NewInt(1))
	return gp.G.Cmp(big.NewInt(1)) > 0 && gp.G.Cmp(pMinus1) < 0
}

// Clone returns a deep copy for callers that must not alias the shared pair.
func (gp GroupParameters) Clone() GroupParameters {
	return GroupParameters{
		P: new(big.Int).Set(gp.P),
		G: new(big.Int).Set(gp.G),
	}
}
