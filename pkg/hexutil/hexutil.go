// Package hexutil implements the 0x-aware hex codec every other package in
// the core builds on: Ethereum hex strings are always lowercase and always
// carry an even number of nibbles.
package hexutil

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/web3kit-go/core/pkg/errkind"
)

// Encode returns the lowercase hex encoding of b, 0x-prefixed when prefix is
// true.
func Encode(b []byte, prefix bool) string {
	s := hex.EncodeToString(b)
	if prefix {
		return "0x" + s
	}
	return s
}

// Decode accepts both 0x-prefixed and bare hex strings. Odd-length input and
// non-hex characters are InvalidInput errors.
func Decode(s string) ([]byte, error) {
	s = strip0x(s)
	if len(s)%2 != 0 {
		return nil, errkind.New(errkind.InvalidInput, "hex string has odd length")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "invalid hex string", err)
	}
	return b, nil
}

// MustDecode panics on error; useful for compile-time-known test vectors.
func MustDecode(s string) []byte {
	b, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return b
}

// EncodeUint64 returns the minimal big-endian hex encoding of n, 0x-prefixed,
// with no leading zero nibble (matching go-ethereum's hexutil.Uint64 form),
// except that zero encodes as "0x0".
func EncodeUint64(n uint64) string {
	if n == 0 {
		return "0x0"
	}
	return "0x" + strings.TrimLeft(hex.EncodeToString(big.NewInt(0).SetUint64(n).Bytes()), "0")
}

// EncodeBig returns the minimal big-endian hex encoding of n, 0x-prefixed.
// Negative values are InvalidInput.
func EncodeBig(n *big.Int) (string, error) {
	if n.Sign() < 0 {
		return "", errkind.New(errkind.InvalidInput, "cannot hex-encode a negative integer")
	}
	if n.Sign() == 0 {
		return "0x0", nil
	}
	return "0x" + strings.TrimLeft(hex.EncodeToString(n.Bytes()), "0"), nil
}

// DecodeBig parses a 0x-prefixed or bare hex string into a non-negative
// big.Int.
func DecodeBig(s string) (*big.Int, error) {
	b, err := Decode(pad0(strip0x(s)))
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

func strip0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func pad0(s string) string {
	if len(s)%2 != 0 {
		return "0" + s
	}
	return s
}
