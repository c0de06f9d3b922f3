// Package schnorrx implements BIP-340 x-only Schnorr signatures on
// secp256k1 by wrapping btcec's reference implementation, which already
// performs the tagged-hash and even-y normalization BIP-340 requires.
package schnorrx

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/web3kit-go/core/pkg/errkind"
)

// PrivateKeyFromBytes parses a 32-byte secp256k1 scalar.
func PrivateKeyFromBytes(b []byte) (*btcec.PrivateKey, error) {
	if len(b) != 32 {
		return nil, errkind.New(errkind.InvalidInput, "schnorr private key must be 32 bytes")
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	return priv, nil
}

// PublicKeyXOnly returns the 32-byte x-only public key for priv, per
// BIP-340's even-y convention.
func PublicKeyXOnly(priv *btcec.PrivateKey) [32]byte {
	pub, _ := schnorr.ParsePubKey(schnorr.SerializePubKey(priv.PubKey()))
	var out [32]byte
	copy(out[:], schnorr.SerializePubKey(pub))
	return out
}

// Sign produces a BIP-340 signature over a 32-byte message.
func Sign(priv *btcec.PrivateKey, msg [32]byte) ([64]byte, error) {
	sig, err := schnorr.Sign(priv, msg[:])
	if err != nil {
		return [64]byte{}, errkind.Wrap(errkind.InvalidSignature, "schnorr signing failed", err)
	}
	var out [64]byte
	copy(out[:], sig.Serialize())
	return out, nil
}

// Verify checks a BIP-340 signature over msg against a 32-byte x-only
// public key.
func Verify(pubXOnly [32]byte, msg [32]byte, sig [64]byte) error {
	pub, err := schnorr.ParsePubKey(pubXOnly[:])
	if err != nil {
		return errkind.Wrap(errkind.InvalidCurvePoint, "invalid x-only public key", err)
	}
	parsed, err := schnorr.ParseSignature(sig[:])
	if err != nil {
		return errkind.Wrap(errkind.InvalidSignature, "invalid schnorr signature encoding", err)
	}
	if !parsed.Verify(msg[:], pub) {
		return errkind.New(errkind.InvalidSignature, "schnorr signature verification failed")
	}
	return nil
}
