// Package bip39 wraps github.com/tyler-smith/go-bip39 to provide
// entropy<->mnemonic<->seed conversions with this module's kind-tagged
// error contract.
package bip39

import (
	gobip39 "github.com/tyler-smith/go-bip39"

	"github.com/web3kit-go/core/pkg/errkind"
)

// Strength is the entropy size in bits. Valid values are 128, 160, 192,
// 224, and 256, giving 12, 15, 18, 21, and 24 word mnemonics respectively.
type Strength int

const (
	Strength128 Strength = 128
	Strength160 Strength = 160
	Strength192 Strength = 192
	Strength224 Strength = 224
	Strength256 Strength = 256
)

// NewEntropy returns a cryptographically random entropy buffer of the
// requested strength.
func NewEntropy(strength Strength) ([]byte, error) {
	entropy, err := gobip39.NewEntropy(int(strength))
	if err != nil {
		return nil, errkind.Wrap(errkind.EntropyUnavailable, "failed to read entropy", err)
	}
	return entropy, nil
}

// NewMnemonic encodes entropy as a space-separated BIP-39 mnemonic using
// the English wordlist.
func NewMnemonic(entropy []byte) (string, error) {
	mnemonic, err := gobip39.NewMnemonic(entropy)
	if err != nil {
		return "", errkind.Wrap(errkind.InvalidInput, "failed to encode mnemonic", err)
	}
	return mnemonic, nil
}

// MnemonicToEntropy reverses NewMnemonic, validating the embedded checksum.
func MnemonicToEntropy(mnemonic string) ([]byte, error) {
	entropy, err := gobip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidChecksum, "mnemonic checksum validation failed", err)
	}
	return entropy, nil
}

// IsValid reports whether mnemonic is a well-formed, checksum-valid BIP-39
// phrase.
func IsValid(mnemonic string) bool {
	return gobip39.IsMnemonicValid(mnemonic)
}

// SeedFromMnemonic derives the 64-byte BIP-39 seed via PBKDF2-HMAC-SHA512
// over the mnemonic and an optional passphrase, 2048 rounds.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	if !gobip39.IsMnemonicValid(mnemonic) {
		return nil, errkind.New(errkind.InvalidChecksum, "mnemonic checksum validation failed")
	}
	return gobip39.NewSeed(mnemonic, passphrase), nil
}
