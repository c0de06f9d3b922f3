// Package base58 wraps github.com/btcsuite/btcd/btcutil/base58's
// Bitcoin-alphabet Base58Check codec.
package base58

import (
	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/web3kit-go/core/pkg/errkind"
)

// Encode returns the plain (non-checksummed) base58 encoding of b.
func Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode reverses Encode.
func Decode(s string) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) == 0 && s != "" {
		return nil, errkind.New(errkind.InvalidInput, "invalid base58 string")
	}
	return decoded, nil
}

// CheckEncode prefixes b with version, appends a 4-byte double-SHA256
// checksum, and base58-encodes the result.
func CheckEncode(b []byte, version byte) string {
	return base58.CheckEncode(b, version)
}

// CheckDecode reverses CheckEncode, validating the checksum.
func CheckDecode(s string) ([]byte, byte, error) {
	payload, version, err := base58.CheckDecode(s)
	if err != nil {
		return nil, 0, errkind.Wrap(errkind.InvalidChecksum, "base58check validation failed", err)
	}
	return payload, version, nil
}
