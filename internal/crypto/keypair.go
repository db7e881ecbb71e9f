package crypto

import (
	"fmt"
	"math/big"

	"dhx/internal/domain"
)

// GenerateSecret draws a uniform secret exponent from [2, p-2].
func GenerateSecret(p *big.Int) (*big.Int, error) {
	return randInRange(two, new(big.Int).Sub(p, one))
}

// ComputePublic returns the public value g^secret mod p.
func ComputePublic(secret, g, p *big.Int) *big.Int {
	return ModPow(g, secret, p)
}

// NewKeyPair generates a fresh key pair under params. Each session
// calls this exactly once; pairs are never reused across sessions.
func NewKeyPair(params domain.GroupParameters) (domain.KeyPair, error) {
	secret, err := GenerateSecret(params.P)
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("generating secret exponent: %w", err)
	}
	return domain.KeyPair{
		Secret: secret,
		Public: ComputePublic(secret, params.G, params.P),
	}, nil
}

// SharedSecret folds the peer's public value with the local secret:
// peerPublic^secret mod p. For two honest key pairs under the same
// (p, g) both sides compute the same value.
func SharedSecret(peerPublic, secret, p *big.Int) *big.Int {
	return ModPow(peerPublic, secret, p)
}
