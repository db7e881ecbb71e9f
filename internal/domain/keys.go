package domain

import "math/big"

// KeyPair is one session's secret exponent and the public value
// g^secret mod p derived from it. A pair belongs to exactly one session
// and one role; the secret never crosses the session boundary.
type KeyPair struct {
	Secret *big.Int
	Public *big.Int
}

// Wipe overwrites the secret exponent in place. Best-effort scrubbing:
// it shortens the secret's lifetime in memory but cannot reach copies
// the garbage collector has already moved.
func (kp *KeyPair) Wipe() {
	wipeInt(kp.Secret)
}

func wipeInt(v *big.Int) {
	if v == nil {
		return
	}
	words := v.Bits()
	for i := range words {
		words[i] = 0
	}
	v.SetInt64(0)
}
