package cairo

import (
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

// Selector returns the entry-point selector for a Cairo function name:
// Keccak-256 of the name truncated to 250 bits.
func Selector(name string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(name))
	sum := h.Sum(nil)
	sum[0] &= 0x03
	return new(uint256.Int).SetBytes(sum).Hex()
}
