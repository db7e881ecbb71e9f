package crypto_test

import (
	"math/big"
	"testing"

	"dhx/internal/crypto"
)

// naiveModPow multiplies base into an accumulator exp times.
func naiveModPow(base, exp, modulus int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result = result * base % modulus
	}
	return result
}

func TestModPowMatchesNaive(t *testing.T) {
	for base := int64(0); base <= 12; base++ {
		for exp := int64(0); exp <= 10; exp++ {
			for modulus := int64(1); modulus <= 13; modulus++ {
				want := naiveModPow(base, exp, modulus)
				got := crypto.ModPow(big.NewInt(base), big.NewInt(exp), big.NewInt(modulus))
				if got.Int64() != want {
					t.Fatalf("ModPow(%d, %d, %d) = %d, want %d", base, exp, modulus, got.Int64(), want)
				}
			}
		}
	}
}

func TestModPowZeroExponent(t *testing.T) {
	zero := big.NewInt(0)
	for _, base := range []int64{0, 1, 2, 7, 100} {
		for _, modulus := range []int64{1, 2, 97} {
			got := crypto.ModPow(big.NewInt(base), zero, big.NewInt(modulus))
			if got.Cmp(big.NewInt(1)) != 0 {
				t.Fatalf("ModPow(%d, 0, %d) = %v, want 1", base, modulus, got)
			}
		}
	}
}

func TestModPowLargeValues(t *testing.T) {
	// 2^1000 mod (2^127 - 1): Fermat's little theorem gives
	// 2^1000 = 2^(1000 mod 126) mod p for prime p = 2^127 - 1.
	p := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	got := crypto.ModPow(big.NewInt(2), big.NewInt(1000), p)
	want := new(big.Int).Lsh(big.NewInt(1), 1000%126)
	if got.Cmp(want) != 0 {
		t.Fatalf("ModPow(2, 1000, 2^127-1) = %v, want %v", got, want)
	}
}
