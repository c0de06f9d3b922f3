// Package sr25519 implements a Schnorr signature scheme on the edwards25519
// group with the same PublicKey/Sign/Verify shape as pkg/ed25519x (32-byte
// seeds, 32-byte public keys, 64-byte signatures), plus a hardened-only
// Derive that pkg/ed25519x does not have.
//
// This is NOT a byte-exact port of substrate's sr25519 (Ristretto255 points
// plus a Merlin STROBE transcript for the Fiat-Shamir challenge) — no such
// library exists in this module's dependency surface, and a from-scratch
// Merlin transcript implementation was judged out of scope for this pass.
// See DESIGN.md for the Open Question this resolves, carried over from
// spec.md §9's explicit flag that the reference Sr25519 source was a
// placeholder. What is implemented is a real (non-toy) Schnorr signature on
// the edwards25519 curve via filippo.io/edwards25519, sharing the crypto
// shape (32-byte keys, 64-byte R‖s signatures, hash-based Fiat-Shamir
// challenge) callers of the other curve engines expect.
package sr25519

import (
	"crypto/sha512"
	"encoding/binary"

	"filippo.io/edwards25519"

	"github.com/web3kit-go/core/pkg/errkind"
	"github.com/web3kit-go/core/pkg/hash"
)

const (
	SeedSize      = 32
	PublicKeySize = 32
	SignatureSize = 64

	// HardenedOffset mirrors pkg/slip10's hardened-only derivation floor:
	// sr25519 has no defined public-key-only child derivation either, so
	// Derive rejects any index below this offset.
	HardenedOffset uint32 = 0x80000000
)

func scalarFromSeed(seed []byte) (*edwards25519.Scalar, []byte, error) {
	if len(seed) != SeedSize {
		return nil, nil, errkind.New(errkind.InvalidInput, "sr25519 seed must be 32 bytes")
	}
	h := sha512.Sum512(seed)
	sc, err := edwards25519.NewScalar().SetUniformBytes(h[:])
	if err != nil {
		return nil, nil, errkind.Wrap(errkind.InvalidInput, "failed to reduce seed to scalar", err)
	}
	noncePrefix := h[32:]
	return sc, noncePrefix, nil
}

// PublicKey derives the 32-byte compressed public point for seed.
func PublicKey(seed []byte) ([]byte, error) {
	sc, _, err := scalarFromSeed(seed)
	if err != nil {
		return nil, err
	}
	pub := new(edwards25519.Point).ScalarBaseMult(sc)
	return pub.Bytes(), nil
}

// Derive computes the hardened child (seed, chainCode) pair at index from a
// parent seed/chainCode, the same SLIP-10-shaped HMAC-SHA512 chain
// pkg/slip10 uses for Ed25519. index must carry the hardened bit; sr25519
// has no defined non-hardened child derivation, so lower indexes are
// rejected with errkind.InvalidDerivation rather than silently hardened.
func Derive(seed, chainCode []byte, index uint32) (childSeed, childChainCode []byte, err error) {
	if len(seed) != SeedSize {
		return nil, nil, errkind.New(errkind.InvalidInput, "sr25519 seed must be 32 bytes")
	}
	if len(chainCode) != 32 {
		return nil, nil, errkind.New(errkind.InvalidInput, "sr25519 chain code must be 32 bytes")
	}
	if index < HardenedOffset {
		return nil, nil, errkind.New(errkind.InvalidDerivation, "sr25519 derivation requires a hardened index")
	}

	data := make([]byte, 1+SeedSize+4)
	data[0] = 0x00
	copy(data[1:1+SeedSize], seed)
	binary.BigEndian.PutUint32(data[1+SeedSize:], index)

	i := hash.HMACSHA512(chainCode, data)
	return append([]byte(nil), i[:32]...), append([]byte(nil), i[32:]...), nil
}

// Sign produces a 64-byte R‖s Schnorr signature over message, deterministic
// in (seed, message).
func Sign(seed, message []byte) ([]byte, error) {
	sc, noncePrefix, err := scalarFromSeed(seed)
	if err != nil {
		return nil, err
	}
	pub := new(edwards25519.Point).ScalarBaseMult(sc).Bytes()

	rh := sha512.New()
	rh.Write(noncePrefix)
	rh.Write(message)
	rDigest := rh.Sum(nil)
	r, err := edwards25519.NewScalar().SetUniformBytes(rDigest)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "failed to derive nonce scalar", err)
	}
	R := new(edwards25519.Point).ScalarBaseMult(r)

	e, err := challengeScalar(R.Bytes(), pub, message)
	if err != nil {
		return nil, err
	}

	s := edwards25519.NewScalar().Multiply(e, sc)
	s.Add(s, r)

	out := make([]byte, SignatureSize)
	copy(out[:32], R.Bytes())
	copy(out[32:], s.Bytes())
	return out, nil
}

// Verify checks a 64-byte signature over message against a 32-byte public
// key.
func Verify(pub, message, sig []byte) error {
	if len(pub) != PublicKeySize {
		return errkind.New(errkind.InvalidCurvePoint, "sr25519 public key must be 32 bytes")
	}
	if len(sig) != SignatureSize {
		return errkind.New(errkind.InvalidSignature, "sr25519 signature must be 64 bytes")
	}
	pubPoint, err := new(edwards25519.Point).SetBytes(pub)
	if err != nil {
		return errkind.Wrap(errkind.InvalidCurvePoint, "public key is not a valid curve point", err)
	}
	R := sig[:32]
	sBytes := sig[32:]
	s, err := edwards25519.NewScalar().SetCanonicalBytes(sBytes)
	if err != nil {
		return errkind.Wrap(errkind.InvalidSignature, "s component is not a canonical scalar", err)
	}

	e, err := challengeScalar(R, pub, message)
	if err != nil {
		return err
	}

	// Check s*B == R + e*Pub.
	lhs := new(edwards25519.Point).ScalarBaseMult(s)
	ePub := new(edwards25519.Point).ScalarMult(e, pubPoint)
	Rpoint, err := new(edwards25519.Point).SetBytes(R)
	if err != nil {
		return errkind.Wrap(errkind.InvalidSignature, "R component is not a valid curve point", err)
	}
	rhs := new(edwards25519.Point).Add(Rpoint, ePub)

	if lhs.Equal(rhs) != 1 {
		return errkind.New(errkind.InvalidSignature, "sr25519 signature verification failed")
	}
	return nil
}

func challengeScalar(r, pub, message []byte) (*edwards25519.Scalar, error) {
	h := sha512.New()
	h.Write(r)
	h.Write(pub)
	h.Write(message)
	e, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "failed to derive challenge scalar", err)
	}
	return e, nil
}
