package crypto

import "math/big"

// ModPow returns base^exp mod modulus by square-and-multiply: the low
// bit of a shrinking exponent copy selects whether the accumulator
// picks up the current squared base. exp must be non-negative and
// modulus positive; a zero modulus is a contract violation and panics
// like any other division by zero.
func ModPow(base, exp, modulus *big.Int) *big.Int {
	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exp)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		e.Rsh(e, 1)
		b.Mul(b, b)
		b.Mod(b, modulus)
	}
	return result
}
