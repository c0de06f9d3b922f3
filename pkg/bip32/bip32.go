// Package bip32 implements hierarchical deterministic key derivation over
// secp256k1 by wrapping github.com/btcsuite/btcd/btcutil/hdkeychain, which
// already implements the xprv/xpub serialization and hardened/non-hardened
// child derivation BIP-32 specifies.
package bip32

import (
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/web3kit-go/core/pkg/errkind"
)

// HardenedOffset is the child index at which hardened derivation begins,
// per BIP-32.
const HardenedOffset = hdkeychain.HardenedKeyStart

// Key wraps an extended key (private or public) at one node of a
// derivation tree.
type Key struct {
	ext *hdkeychain.ExtendedKey
}

// NewMaster derives the master extended private key from a BIP-39 seed.
func NewMaster(seed []byte) (*Key, error) {
	ext, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidDerivation, "failed to derive master key from seed", err)
	}
	return &Key{ext: ext}, nil
}

// ParseExtendedKey parses a base58check-encoded xprv/xpub string.
func ParseExtendedKey(s string) (*Key, error) {
	ext, err := hdkeychain.NewKeyFromString(s)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "failed to parse extended key", err)
	}
	return &Key{ext: ext}, nil
}

// Child derives the child key at index. Indexes >= HardenedOffset produce
// hardened children, which require k to be private.
func (k *Key) Child(index uint32) (*Key, error) {
	child, err := k.ext.Derive(index)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidDerivation, "child derivation failed", err)
	}
	return &Key{ext: child}, nil
}

// DerivePath walks a sequence of child indexes from k in order.
func (k *Key) DerivePath(indexes ...uint32) (*Key, error) {
	cur := k
	for _, idx := range indexes {
		next, err := cur.Child(idx)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Neuter strips the private key, yielding the public-only counterpart.
func (k *Key) Neuter() (*Key, error) {
	ext, err := k.ext.Neuter()
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidDerivation, "failed to neuter extended key", err)
	}
	return &Key{ext: ext}, nil
}

// IsPrivate reports whether k carries a private key.
func (k *Key) IsPrivate() bool {
	return k.ext.IsPrivate()
}

// PrivateKeyBytes returns the 32-byte secp256k1 scalar, if k is private.
func (k *Key) PrivateKeyBytes() ([]byte, error) {
	priv, err := k.ext.ECPrivKey()
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidDerivation, "key has no private component", err)
	}
	return priv.Serialize(), nil
}

// PublicKeyBytes returns the 33-byte compressed secp256k1 public point.
func (k *Key) PublicKeyBytes() ([]byte, error) {
	pub, err := k.ext.ECPubKey()
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidDerivation, "failed to derive public key", err)
	}
	return pub.SerializeCompressed(), nil
}

// String returns the base58check xprv/xpub encoding of k.
func (k *Key) String() string {
	return k.ext.String()
}
