// Package ed25519x wraps the standard library's RFC 8032 Ed25519
// implementation with the core's kind-tagged error contract and the seed
// shape SLIP-0010 derivation needs.
package ed25519x

import (
	"crypto/ed25519"

	"github.com/web3kit-go/core/pkg/errkind"
)

// SeedSize is the size of an Ed25519 seed (the "private key" SLIP-0010
// stores at each node).
const SeedSize = ed25519.SeedSize

// PublicKeySize and SignatureSize match RFC 8032.
const (
	PublicKeySize  = ed25519.PublicKeySize
	SignatureSize  = ed25519.SignatureSize
)

// PrivateKeyFromSeed expands a 32-byte seed into the 64-byte
// seed||publicKey private key the stdlib operates on.
func PrivateKeyFromSeed(seed []byte) (ed25519.PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, errkind.New(errkind.InvalidInput, "ed25519 seed must be 32 bytes")
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

// PublicKey derives the public key for a seed.
func PublicKey(seed []byte) ([]byte, error) {
	priv, err := PrivateKeyFromSeed(seed)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), priv.Public().(ed25519.PublicKey)...), nil
}

// Sign signs message with the key derived from seed.
func Sign(seed, message []byte) ([]byte, error) {
	priv, err := PrivateKeyFromSeed(seed)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(priv, message), nil
}

// Verify checks sig over message against pub.
func Verify(pub, message, sig []byte) error {
	if len(pub) != PublicKeySize {
		return errkind.New(errkind.InvalidCurvePoint, "ed25519 public key must be 32 bytes")
	}
	if len(sig) != SignatureSize {
		return errkind.New(errkind.InvalidSignature, "ed25519 signature must be 64 bytes")
	}
	if !ed25519.Verify(pub, message, sig) {
		return errkind.New(errkind.InvalidSignature, "ed25519 signature verification failed")
	}
	return nil
}
