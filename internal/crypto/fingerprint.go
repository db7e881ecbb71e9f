package crypto

import (
	"encoding/hex"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short blake2b digest of v's magnitude, so key
// material can be logged and compared without exposing the value.
func Fingerprint(v *big.Int) string {
	sum := blake2b.Sum256(v.Bytes())
	return hex.EncodeToString(sum[:10])
}
