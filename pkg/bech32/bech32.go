// Package bech32 wraps github.com/btcsuite/btcd/btcutil/bech32's BIP-173 /
// BIP-350 codec, including the 5-bit group conversion most callers need
// before encoding arbitrary byte payloads.
package bech32

import (
	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/web3kit-go/core/pkg/errkind"
)

// ConvertBits regroups data from fromBits-sized groups to toBits-sized
// groups, padding the final group when pad is true.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	out, err := bech32.ConvertBits(data, fromBits, toBits, pad)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "bit group conversion failed", err)
	}
	return out, nil
}

// EncodeBytes converts an arbitrary byte payload to 5-bit groups and
// bech32-encodes it under hrp.
func EncodeBytes(hrp string, payload []byte) (string, error) {
	data, err := ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	encoded, err := bech32.Encode(hrp, data)
	if err != nil {
		return "", errkind.Wrap(errkind.InvalidInput, "bech32 encoding failed", err)
	}
	return encoded, nil
}

// DecodeBytes reverses EncodeBytes, returning the human-readable part and
// the original byte payload.
func DecodeBytes(s string) (string, []byte, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return "", nil, errkind.Wrap(errkind.InvalidChecksum, "bech32 checksum validation failed", err)
	}
	payload, err := ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, payload, nil
}

// EncodeM is the BIP-350 (bech32m) variant used by newer witness versions.
func EncodeM(hrp string, payload []byte) (string, error) {
	data, err := ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	encoded, err := bech32.EncodeM(hrp, data)
	if err != nil {
		return "", errkind.Wrap(errkind.InvalidInput, "bech32m encoding failed", err)
	}
	return encoded, nil
}
