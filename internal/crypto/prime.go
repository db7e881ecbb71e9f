package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// IsProbablePrime runs rounds iterations of Miller-Rabin on n with
// uniformly random witnesses. A false result is definite; a true result
// is wrong with probability at most 4^-rounds.
func IsProbablePrime(n *big.Int, rounds int) bool {
	if n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(three) <= 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	// Write n-1 as d * 2^r with d odd.
	d := new(big.Int).Sub(n, one)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	nMinus1 := new(big.Int).Sub(n, one)

witness:
	for i := 0; i < rounds; i++ {
		a := randWitness(n)
		x := ModPow(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue witness
		}
		for j := 0; j < r-1; j++ {
			x = ModPow(x, two, n)
			if x.Cmp(nMinus1) == 0 {
				continue witness
			}
		}
		// No square reached n-1: a proves n composite.
		return false
	}
	return true
}

// randWitness draws a uniform witness from [2, n-2]. n must be > 4.
func randWitness(n *big.Int) *big.Int {
	span := new(big.Int).Sub(n, three)
	a, err := rand.Int(rand.Reader, span)
	if err != nil {
		// The system entropy source failing is not a recoverable
		// condition for a pure predicate.
		panic(fmt.Sprintf("crypto: reading random witness: %v", err))
	}
	return a.Add(a, two)
}
