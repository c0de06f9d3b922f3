// Package slip10 implements SLIP-0010 hierarchical deterministic key
// derivation for Ed25519, built on this module's own HMAC-SHA512 primitive
// (pkg/hash) and Ed25519 engine (pkg/ed25519x). None of the pack's BIP-32
// implementations support the Ed25519 curve — SLIP-0010 restricts it to
// hardened-only derivation specifically because Ed25519 has no defined
// public-key-only ("non-hardened") child derivation — so this is a direct
// implementation of the SLIP-0010 HMAC chain rather than a wrapper.
package slip10

import (
	"encoding/binary"

	"github.com/web3kit-go/core/pkg/ed25519x"
	"github.com/web3kit-go/core/pkg/errkind"
	"github.com/web3kit-go/core/pkg/hash"
)

// HardenedOffset is the child index at which hardened derivation begins.
// Every index passed to Child/DerivePath must already be at or above this
// offset; lower indexes are rejected rather than silently hardened.
const HardenedOffset uint32 = 0x80000000

var masterKeySalt = []byte("ed25519 seed")

// Node is one point in an Ed25519 derivation tree: a 32-byte key and a
// 32-byte chain code.
type Node struct {
	Key       [32]byte
	ChainCode [32]byte
}

// NewMasterNode derives the master node from a BIP-39 seed.
func NewMasterNode(seed []byte) (*Node, error) {
	if len(seed) == 0 {
		return nil, errkind.New(errkind.InvalidInput, "seed must not be empty")
	}
	i := hash.HMACSHA512(masterKeySalt, seed)
	var n Node
	copy(n.Key[:], i[:32])
	copy(n.ChainCode[:], i[32:])
	return &n, nil
}

// Child derives the hardened child at index. Ed25519 SLIP-0010 derivation
// is hardened-only: index must already carry the hardened bit
// (index >= HardenedOffset), and a non-hardened index is rejected with
// errkind.InvalidDerivation rather than silently hardened.
func (n *Node) Child(index uint32) (*Node, error) {
	if index < HardenedOffset {
		return nil, errkind.New(errkind.InvalidDerivation, "slip-0010 ed25519 derivation requires a hardened index")
	}

	data := make([]byte, 1+32+4)
	data[0] = 0x00
	copy(data[1:33], n.Key[:])
	binary.BigEndian.PutUint32(data[33:], index)

	i := hash.HMACSHA512(n.ChainCode[:], data)
	var child Node
	copy(child.Key[:], i[:32])
	copy(child.ChainCode[:], i[32:])
	return &child, nil
}

// DerivePath walks a sequence of child indexes from n in order. Every
// index must carry the hardened bit; the first non-hardened index fails
// the whole derivation.
func (n *Node) DerivePath(indexes ...uint32) (*Node, error) {
	cur := n
	for _, idx := range indexes {
		next, err := cur.Child(idx)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// PublicKey returns the Ed25519 public key for this node's seed.
func (n *Node) PublicKey() ([]byte, error) {
	return ed25519x.PublicKey(n.Key[:])
}
