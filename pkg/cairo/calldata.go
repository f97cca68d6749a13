// Package cairo encodes and decodes StarkNet calldata: felts, u256 pairs,
// ByteArray strings and entry-point selectors.
package cairo

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// byteArrayWordLen is the number of bytes packed into one ByteArray data word.
const byteArrayWordLen = 31

var (
	errShortCalldata = errors.New("calldata too short")
	errFeltOverflow  = errors.New("felt exceeds 256 bits")
)

var u128Mask = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 128), uint256.NewInt(1))

// ParseFelt parses a hex ("0x..") or decimal felt string.
// uint256.FromHex rejects leading zeros, so parsing goes through math/big.
func ParseFelt(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid felt %q", s)
	}
	if b.Sign() < 0 {
		return nil, fmt.Errorf("invalid felt %q: negative", s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, errFeltOverflow
	}
	return v, nil
}

// NormalizeAddress returns addr as a canonical lowercase hex felt.
func NormalizeAddress(addr string) (string, error) {
	v, err := ParseFelt(addr)
	if err != nil {
		return "", fmt.Errorf("invalid address: %w", err)
	}
	return v.Hex(), nil
}

// EncodeU256 splits v into its (low, high) 128-bit felts.
func EncodeU256(v *uint256.Int) []string {
	low := new(uint256.Int).And(v, u128Mask)
	high := new(uint256.Int).Rsh(v, 128)
	return []string{low.Hex(), high.Hex()}
}

// DecodeU256 reads a (low, high) felt pair from the head of felts.
func DecodeU256(felts []string) (*uint256.Int, error) {
	if len(felts) < 2 {
		return nil, errShortCalldata
	}
	low, err := ParseFelt(felts[0])
	if err != nil {
		return nil, err
	}
	high, err := ParseFelt(felts[1])
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).Or(low, new(uint256.Int).Lsh(high, 128)), nil
}

// DecodeBool reads a Cairo bool felt.
func DecodeBool(felts []string) (bool, error) {
	if len(felts) < 1 {
		return false, errShortCalldata
	}
	v, err := ParseFelt(felts[0])
	if err != nil {
		return false, err
	}
	return !v.IsZero(), nil
}

// EncodeByteArray encodes s as Cairo ByteArray calldata:
// [full word count, words..., pending word, pending word length].
func EncodeByteArray(s string) []string {
	data := []byte(s)
	full := len(data) / byteArrayWordLen

	out := make([]string, 0, full+3)
	out = append(out, uint256.NewInt(uint64(full)).Hex())
	for i := 0; i < full; i++ {
		chunk := data[i*byteArrayWordLen : (i+1)*byteArrayWordLen]
		out = append(out, new(uint256.Int).SetBytes(chunk).Hex())
	}
	pending := data[full*byteArrayWordLen:]
	out = append(out,
		new(uint256.Int).SetBytes(pending).Hex(),
		uint256.NewInt(uint64(len(pending))).Hex(),
	)
	return out
}

// DecodeByteArray decodes one ByteArray from the head of felts and returns
// the string and the number of felts consumed.
func DecodeByteArray(felts []string) (string, int, error) {
	if len(felts) < 1 {
		return "", 0, errShortCalldata
	}
	n, err := ParseFelt(felts[0])
	if err != nil {
		return "", 0, err
	}
	if !n.IsUint64() || n.Uint64() > uint64(len(felts)) {
		return "", 0, errShortCalldata
	}
	full := int(n.Uint64())
	if len(felts) < full+3 {
		return "", 0, errShortCalldata
	}

	var sb strings.Builder
	for i := 1; i <= full; i++ {
		w, err := ParseFelt(felts[i])
		if err != nil {
			return "", 0, err
		}
		b := w.Bytes32()
		sb.Write(b[32-byteArrayWordLen:])
	}

	pending, err := ParseFelt(felts[full+1])
	if err != nil {
		return "", 0, err
	}
	pendingLen, err := ParseFelt(felts[full+2])
	if err != nil {
		return "", 0, err
	}
	if !pendingLen.IsUint64() || pendingLen.Uint64() >= byteArrayWordLen {
		return "", 0, fmt.Errorf("invalid pending word length %s", pendingLen.Dec())
	}
	if l := int(pendingLen.Uint64()); l > 0 {
		b := pending.Bytes32()
		sb.Write(b[32-l:])
	}
	return sb.String(), full + 3, nil
}
