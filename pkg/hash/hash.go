// Package hash collects the hash primitives layer L1a depends on:
// Keccak-256 (Ethereum's 0x01-padded variant, distinct from NIST SHA3-256),
// SHA-256/512, RIPEMD-160, and HMAC-SHA256/512.
package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for HASH160, no replacement in the ecosystem
	"golang.org/x/crypto/sha3"
)

// Keccak256 hashes the concatenation of data with Ethereum's Keccak variant
// (0x01 padding byte, not SHA3-256's 0x06).
func Keccak256(data ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// Keccak256Bytes is Keccak256 with a slice return, for call sites that don't
// want a fixed-size array.
func Keccak256Bytes(data ...[]byte) []byte {
	out := Keccak256(data...)
	return out[:]
}

// SHA256 hashes data with FIPS 180-4 SHA-256.
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// SHA512 hashes data with FIPS 180-4 SHA-512.
func SHA512(data []byte) [64]byte {
	return sha512.Sum512(data)
}

// Hash160 computes RIPEMD160(SHA256(data)), used for BIP-32 fingerprints and
// Bitcoin-style addresses.
func Hash160(data []byte) [20]byte {
	sh := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(sh[:])
	var out [20]byte
	r.Sum(out[:0])
	return out
}

// HMACSHA256 computes RFC 2104 HMAC-SHA256(key, data).
func HMACSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// HMACSHA512 computes RFC 2104 HMAC-SHA512(key, data).
func HMACSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
