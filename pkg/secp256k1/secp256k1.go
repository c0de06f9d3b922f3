// Package secp256k1 wraps go-ethereum's battle-tested secp256k1 bindings
// (which already implement RFC 6979 deterministic nonces and low-s
// canonicalization via decred/dcrd under the hood) with the signature and
// recovery-id conventions this core's data model requires.
package secp256k1

import (
	"crypto/ecdsa"
	"math/big"

	dsecp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/web3kit-go/core/pkg/errkind"
)

// N is the secp256k1 group order.
var N = dsecp256k1.S256().N

// halfN is n/2, the low-s canonicalization threshold.
var halfN = new(big.Int).Rsh(new(big.Int).Set(N), 1)

// PrivateKey is a secp256k1 scalar, 0 < d < N.
type PrivateKey struct {
	key *ecdsa.PrivateKey
}

// GenerateKey draws a private key from the OS CSPRNG.
func GenerateKey() (*PrivateKey, error) {
	k, err := ethcrypto.GenerateKey()
	if err != nil {
		return nil, errkind.Wrap(errkind.EntropyUnavailable, "failed to draw secp256k1 key from OS entropy", err)
	}
	return &PrivateKey{key: k}, nil
}

// PrivateKeyFromBytes interprets a 32-byte big-endian scalar as a private
// key. Rejects 0 and values >= N.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != 32 {
		return nil, errkind.New(errkind.InvalidInput, "secp256k1 private key must be 32 bytes")
	}
	d := new(big.Int).SetBytes(b)
	if d.Sign() == 0 || d.Cmp(N) >= 0 {
		return nil, errkind.New(errkind.InvalidInput, "secp256k1 private scalar out of range")
	}
	k, err := ethcrypto.ToECDSA(b)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "invalid secp256k1 private key", err)
	}
	return &PrivateKey{key: k}, nil
}

// Bytes returns the 32-byte big-endian scalar.
func (p *PrivateKey) Bytes() []byte {
	return ethcrypto.FromECDSA(p.key)
}

// PublicKey returns the corresponding public key.
func (p *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: &p.key.PublicKey}
}

// PublicKey is a secp256k1 curve point.
type PublicKey struct {
	key *ecdsa.PublicKey
}

// PublicKeyFromCompressed decompresses a 33-byte compressed public key.
func PublicKeyFromCompressed(b []byte) (*PublicKey, error) {
	pub, err := ethcrypto.DecompressPubkey(b)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidCurvePoint, "invalid compressed public key", err)
	}
	return &PublicKey{key: pub}, nil
}

// PublicKeyFromUncompressed parses a 65-byte (0x04-prefixed) public key.
func PublicKeyFromUncompressed(b []byte) (*PublicKey, error) {
	pub, err := ethcrypto.UnmarshalPubkey(b)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidCurvePoint, "invalid uncompressed public key", err)
	}
	return &PublicKey{key: pub}, nil
}

// Compressed returns the 33-byte compressed encoding.
func (p *PublicKey) Compressed() []byte {
	return ethcrypto.CompressPubkey(p.key)
}

// Uncompressed returns the 65-byte 0x04-prefixed encoding.
func (p *PublicKey) Uncompressed() []byte {
	return ethcrypto.FromECDSAPub(p.key)
}

// Address returns the 20-byte Ethereum address Keccak256(pubXY)[12:].
func (p *PublicKey) Address() [20]byte {
	var out [20]byte
	copy(out[:], ethcrypto.PubkeyToAddress(*p.key).Bytes())
	return out
}

// Signature is a canonical 65-byte r||s||v secp256k1 signature with v in
// {0,1} (pre-EIP-155 form).
type Signature struct {
	R, S *big.Int
	V    byte
}

// Sign produces a deterministic (RFC 6979), low-s-canonical signature over a
// 32-byte message hash, with no EIP-191/EIP-712 prefixing — that is the
// caller's responsibility.
func Sign(hash []byte, priv *PrivateKey) (*Signature, error) {
	if len(hash) != 32 {
		return nil, errkind.New(errkind.InvalidInput, "message hash must be 32 bytes")
	}
	sig, err := ethcrypto.Sign(hash, priv.key)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidSignature, "secp256k1 signing failed", err)
	}
	return &Signature{
		R: new(big.Int).SetBytes(sig[0:32]),
		S: new(big.Int).SetBytes(sig[32:64]),
		V: sig[64],
	}, nil
}

// Bytes65 returns the 65-byte r||s||v encoding with v in {0,1}.
func (s *Signature) Bytes65() []byte {
	out := make([]byte, 65)
	rb := s.R.Bytes()
	sb := s.S.Bytes()
	copy(out[32-len(rb):32], rb)
	copy(out[64-len(sb):64], sb)
	out[64] = s.V
	return out
}

// IsCanonicalLowS reports whether s <= n/2.
func (s *Signature) IsCanonicalLowS() bool {
	return s.S.Cmp(halfN) <= 0
}

// Verify checks a signature over hash against pub, requiring canonical
// low-s and in-range r, s.
func Verify(hash []byte, sig *Signature, pub *PublicKey) bool {
	if sig.R.Sign() <= 0 || sig.R.Cmp(N) >= 0 {
		return false
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(N) >= 0 || !sig.IsCanonicalLowS() {
		return false
	}
	return ethcrypto.VerifySignature(pub.Compressed(), hash, append(padTo32(sig.R), padTo32(sig.S)...))
}

// Recover recovers the public key that produced sig over hash. v must be in
// {0,1}; callers normalize {27,28} or EIP-155 encodings before calling.
func Recover(hash []byte, sig *Signature) (*PublicKey, error) {
	if sig.V > 1 {
		return nil, errkind.New(errkind.InvalidSignature, "recovery id must be 0 or 1")
	}
	if sig.R.Sign() <= 0 || sig.R.Cmp(N) >= 0 || sig.S.Sign() <= 0 || sig.S.Cmp(N) >= 0 {
		return nil, errkind.New(errkind.InvalidSignature, "r or s out of range")
	}
	full := append(append(padTo32(sig.R), padTo32(sig.S)...), sig.V)
	pub, err := ethcrypto.SigToPub(hash, full)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidSignature, "public key recovery failed", err)
	}
	return &PublicKey{key: pub}, nil
}

// NormalizeRecoveryID converts a recovery byte in the {27,28} or
// EIP-155 {2*chainID+35, 2*chainID+36} encodings into the canonical {0,1}
// form. Already-canonical {0,1} values pass through unchanged.
func NormalizeRecoveryID(v uint64, chainID *big.Int) (byte, error) {
	switch {
	case v == 0 || v == 1:
		return byte(v), nil
	case v == 27 || v == 28:
		return byte(v - 27), nil
	case chainID != nil && chainID.Sign() > 0:
		base := new(big.Int).Mul(chainID, big.NewInt(2))
		base.Add(base, big.NewInt(35))
		offset := new(big.Int).Sub(new(big.Int).SetUint64(v), base)
		if offset.Cmp(big.NewInt(0)) == 0 || offset.Cmp(big.NewInt(1)) == 0 {
			return byte(offset.Int64()), nil
		}
	}
	return 0, errkind.New(errkind.InvalidSignature, "recovery id out of range")
}

func padTo32(n *big.Int) []byte {
	b := n.Bytes()
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}
