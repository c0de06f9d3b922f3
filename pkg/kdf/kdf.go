// Package kdf provides the key-derivation functions layer L1b depends on:
// PBKDF2 (HMAC-SHA256 and HMAC-SHA512 instantiations) and scrypt.
package kdf

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"

	"github.com/web3kit-go/core/pkg/errkind"
)

// PBKDF2SHA256 derives keyLen bytes using PBKDF2-HMAC-SHA256, used by
// Keystore V3's "pbkdf2" kdf mode.
func PBKDF2SHA256(password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.New)
}

// PBKDF2SHA512 derives keyLen bytes using PBKDF2-HMAC-SHA512, used by BIP-39
// seed derivation (2048 rounds, 64-byte output).
func PBKDF2SHA512(password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha512.New)
}

// ScryptParams bundles the scrypt cost parameters used by Keystore V3's
// "scrypt" kdf mode.
type ScryptParams struct {
	N, R, P, DKLen int
}

// DefaultScryptParams matches the Web3 Secret Storage v3 recommended
// defaults (N=2^18, r=8, p=1, dkLen=32).
var DefaultScryptParams = ScryptParams{N: 262144, R: 8, P: 1, DKLen: 32}

// Scrypt derives params.DKLen bytes from password and salt.
func Scrypt(password, salt []byte, params ScryptParams) ([]byte, error) {
	key, err := scrypt.Key(password, salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "scrypt derivation failed", err)
	}
	return key, nil
}
