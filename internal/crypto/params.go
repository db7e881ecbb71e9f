package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"dhx/internal/domain"
)

const (
	// DefaultPrimeBits matches the reference deployment size. It is
	// fast enough to generate interactively; use 2048+ in production.
	DefaultPrimeBits = 512

	// MillerRabinRounds bounds the prime-generation false-positive
	// probability by 4^-rounds.
	MillerRabinRounds = 64

	// MinPrimeBits is the smallest modulus size the generator accepts.
	// Below this the group is too small to draw exponents from.
	MinPrimeBits = 16
)

// ErrPrimeBitsTooSmall is returned when the requested modulus size is
// below MinPrimeBits.
var ErrPrimeBitsTooSmall = errors.New("crypto: prime bit length too small")

// GenerateGroupParameters produces a random probable prime p of exactly
// bits bits and a generator g of a large subgroup mod p. It loops until
// both are found; the only failures are a bad bit length or the random
// source erroring.
func GenerateGroupParameters(bits int) (domain.GroupParameters, error) {
	if bits < MinPrimeBits {
		return domain.GroupParameters{}, fmt.Errorf("%w: %d < %d", ErrPrimeBitsTooSmall, bits, MinPrimeBits)
	}
	p, err := randomPrime(bits)
	if err != nil {
		return domain.GroupParameters{}, fmt.Errorf("generating prime: %w", err)
	}
	g, err := findGenerator(p)
	if err != nil {
		return domain.GroupParameters{}, fmt.Errorf("finding generator: %w", err)
	}
	return domain.GroupParameters{P: p, G: g}, nil
}

// randomPrime draws odd candidates of exactly bits bits (top and bottom
// bits forced) until one passes Miller-Rabin.
func randomPrime(bits int) (*big.Int, error) {
	limit := new(big.Int).Lsh(one, uint(bits))
	for {
		p, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return nil, err
		}
		p.SetBit(p, bits-1, 1)
		p.SetBit(p, 0, 1)
		if IsProbablePrime(p, MillerRabinRounds) {
			return p, nil
		}
	}
}

// findGenerator draws random candidates from [2, p-2] and accepts the
// first g with g^((p-1)/2) mod p != 1. This rejects only the order-2
// subgroup; for a safe-prime-shaped p that yields a generator of the
// large prime-order subgroup, not necessarily of the full group.
func findGenerator(p *big.Int) (*big.Int, error) {
	exp := new(big.Int).Sub(p, one)
	exp.Rsh(exp, 1)
	pMinus1 := new(big.Int).Sub(p, one)

	for {
		g, err := randInRange(two, pMinus1)
		if err != nil {
			return nil, err
		}
		if ModPow(g, exp, p).Cmp(one) != 0 {
			return g, nil
		}
	}
}

// randInRange draws a uniform integer from [lo, hi).
func randInRange(lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, err
	}
	return n.Add(n, lo), nil
}
