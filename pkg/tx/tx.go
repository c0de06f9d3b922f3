// Package tx builds and hashes Ethereum transaction envelopes — Legacy,
// EIP-2930, EIP-1559, EIP-4844, and EIP-7702 — on top of this module's own
// RLP codec (pkg/rlp) and Keccak-256 primitive (pkg/hash), mirroring the
// envelope shapes go-ethereum's core/types package defines but expressed
// over the Item tree rather than struct-tag reflection.
package tx

import (
	"math/big"

	"github.com/web3kit-go/core/pkg/addr"
	"github.com/web3kit-go/core/pkg/errkind"
	"github.com/web3kit-go/core/pkg/hash"
	"github.com/web3kit-go/core/pkg/rlp"
)

// Type identifies the transaction envelope format.
type Type byte

const (
	Legacy   Type = 0x00
	AccessList2930 Type = 0x01
	DynamicFee1559 Type = 0x02
	Blob4844       Type = 0x03
	SetCode7702    Type = 0x04
)

// AccessTuple is one entry of an EIP-2930 access list.
type AccessTuple struct {
	Address     addr.Address
	StorageKeys [][32]byte
}

// Authorization is one entry of an EIP-7702 authorization list.
type Authorization struct {
	ChainID *big.Int
	Address addr.Address
	Nonce   uint64
	YParity uint8
	R, S    *big.Int
}

// Signature holds a transaction's ECDSA signature components. V's meaning
// is envelope-dependent: Legacy uses {27,28} or EIP-155-encoded values;
// typed envelopes use a bare y-parity {0,1}.
type Signature struct {
	V *big.Int
	R *big.Int
	S *big.Int
}

// Transaction is the superset of fields across all supported envelope
// types; callers populate only the fields relevant to Type.
type Transaction struct {
	Type Type

	ChainID              *big.Int
	Nonce                uint64
	GasPrice             *big.Int // Legacy only
	GasTipCap            *big.Int // MaxPriorityFeePerGas, typed envelopes
	GasFeeCap            *big.Int // MaxFeePerGas, typed envelopes
	GasLimit             uint64
	To                   *addr.Address // nil for contract creation
	Value                *big.Int
	Data                 []byte
	AccessList           []AccessTuple
	MaxFeePerBlobGas     *big.Int   // EIP-4844 only
	BlobVersionedHashes  [][32]byte // EIP-4844 only
	AuthorizationList    []Authorization // EIP-7702 only

	Signature *Signature // nil when building the unsigned payload
}

func uintItem(n uint64) rlp.Item {
	return bigItem(new(big.Int).SetUint64(n))
}

func bigItem(n *big.Int) rlp.Item {
	if n == nil || n.Sign() == 0 {
		return rlp.Bytes(nil)
	}
	return rlp.Bytes(n.Bytes())
}

func addrItem(a *addr.Address) rlp.Item {
	if a == nil {
		return rlp.Bytes(nil)
	}
	return rlp.Bytes(a.Bytes())
}

func accessListItem(list []AccessTuple) rlp.Item {
	items := make([]rlp.Item, len(list))
	for i, t := range list {
		keys := make([]rlp.Item, len(t.StorageKeys))
		for j, k := range t.StorageKeys {
			kk := k
			keys[j] = rlp.Bytes(kk[:])
		}
		items[i] = rlp.List(rlp.Bytes(t.Address.Bytes()), rlp.List(keys...))
	}
	return rlp.List(items...)
}

func blobHashesItem(hashes [][32]byte) rlp.Item {
	items := make([]rlp.Item, len(hashes))
	for i, h := range hashes {
		hh := h
		items[i] = rlp.Bytes(hh[:])
	}
	return rlp.List(items...)
}

func authorizationListItem(list []Authorization) rlp.Item {
	items := make([]rlp.Item, len(list))
	for i, a := range list {
		items[i] = rlp.List(
			bigItem(a.ChainID),
			rlp.Bytes(a.Address.Bytes()),
			uintItem(a.Nonce),
			uintItem(uint64(a.YParity)),
			bigItem(a.R),
			bigItem(a.S),
		)
	}
	return rlp.List(items...)
}

// AuthorizationSigningHash returns the EIP-7702 authorization-tuple digest
// a wallet signs to authorize address to act as chainId's delegated code
// for the account at nonce: Keccak256(0x05 || RLP([chainId, address,
// nonce])). chainId of zero authorizes across all chains per EIP-7702.
func AuthorizationSigningHash(chainID *big.Int, address addr.Address, nonce uint64) []byte {
	body := rlp.Encode(rlp.List(
		bigItem(chainID),
		rlp.Bytes(address.Bytes()),
		uintItem(nonce),
	))
	payload := make([]byte, 0, 1+len(body))
	payload = append(payload, 0x05)
	payload = append(payload, body...)
	return hash.Keccak256Bytes(payload)
}

// fieldItems builds the RLP item list for tx's body, optionally including
// the trailing signature fields.
func (t Transaction) fieldItems(withSignature bool) ([]rlp.Item, error) {
	var items []rlp.Item

	switch t.Type {
	case Legacy:
		items = []rlp.Item{
			uintItem(t.Nonce),
			bigItem(t.GasPrice),
			uintItem(t.GasLimit),
			addrItem(t.To),
			bigItem(t.Value),
			rlp.Bytes(t.Data),
		}
		if withSignature {
			items = append(items, bigItem(t.Signature.V), bigItem(t.Signature.R), bigItem(t.Signature.S))
		} else if t.ChainID != nil && t.ChainID.Sign() != 0 {
			// EIP-155 signing payload: chainId, 0, 0 appended in place of v,r,s.
			items = append(items, bigItem(t.ChainID), rlp.Bytes(nil), rlp.Bytes(nil))
		}

	case AccessList2930:
		items = []rlp.Item{
			bigItem(t.ChainID),
			uintItem(t.Nonce),
			bigItem(t.GasPrice),
			uintItem(t.GasLimit),
			addrItem(t.To),
			bigItem(t.Value),
			rlp.Bytes(t.Data),
			accessListItem(t.AccessList),
		}
		if withSignature {
			items = append(items, bigItem(t.Signature.V), bigItem(t.Signature.R), bigItem(t.Signature.S))
		}

	case DynamicFee1559:
		items = []rlp.Item{
			bigItem(t.ChainID),
			uintItem(t.Nonce),
			bigItem(t.GasTipCap),
			bigItem(t.GasFeeCap),
			uintItem(t.GasLimit),
			addrItem(t.To),
			bigItem(t.Value),
			rlp.Bytes(t.Data),
			accessListItem(t.AccessList),
		}
		if withSignature {
			items = append(items, bigItem(t.Signature.V), bigItem(t.Signature.R), bigItem(t.Signature.S))
		}

	case Blob4844:
		if t.To == nil {
			return nil, errkind.New(errkind.InvalidInput, "blob transactions must have a recipient")
		}
		items = []rlp.Item{
			bigItem(t.ChainID),
			uintItem(t.Nonce),
			bigItem(t.GasTipCap),
			bigItem(t.GasFeeCap),
			uintItem(t.GasLimit),
			addrItem(t.To),
			bigItem(t.Value),
			rlp.Bytes(t.Data),
			accessListItem(t.AccessList),
			bigItem(t.MaxFeePerBlobGas),
			blobHashesItem(t.BlobVersionedHashes),
		}
		if withSignature {
			items = append(items, bigItem(t.Signature.V), bigItem(t.Signature.R), bigItem(t.Signature.S))
		}

	case SetCode7702:
		items = []rlp.Item{
			bigItem(t.ChainID),
			uintItem(t.Nonce),
			bigItem(t.GasTipCap),
			bigItem(t.GasFeeCap),
			uintItem(t.GasLimit),
			addrItem(t.To),
			bigItem(t.Value),
			rlp.Bytes(t.Data),
			accessListItem(t.AccessList),
			authorizationListItem(t.AuthorizationList),
		}
		if withSignature {
			items = append(items, bigItem(t.Signature.V), bigItem(t.Signature.R), bigItem(t.Signature.S))
		}

	default:
		return nil, errkind.New(errkind.InvalidInput, "unknown transaction type")
	}

	return items, nil
}

func (t Transaction) encode(withSignature bool) ([]byte, error) {
	items, err := t.fieldItems(withSignature)
	if err != nil {
		return nil, err
	}
	body := rlp.Encode(rlp.List(items...))
	if t.Type == Legacy {
		return body, nil
	}
	out := make([]byte, 0, 1+len(body))
	out = append(out, byte(t.Type))
	return append(out, body...), nil
}

// SigningPayload returns the bytes a signer hashes and signs: the unsigned
// envelope for typed transactions, or the EIP-155 (or legacy pre-155)
// payload for Legacy.
func (t Transaction) SigningPayload() ([]byte, error) {
	return t.encode(false)
}

// SigningHash returns Keccak256(SigningPayload()).
func (t Transaction) SigningHash() ([]byte, error) {
	payload, err := t.SigningPayload()
	if err != nil {
		return nil, err
	}
	return hash.Keccak256(payload), nil
}

// Encode serializes the fully signed transaction envelope. Signature must
// be set.
func (t Transaction) Encode() ([]byte, error) {
	if t.Signature == nil {
		return nil, errkind.New(errkind.InvalidInput, "transaction has no signature")
	}
	return t.encode(true)
}

// Hash returns Keccak256(Encode()), the canonical transaction hash used to
// identify a mined or pending transaction.
func (t Transaction) Hash() ([]byte, error) {
	encoded, err := t.Encode()
	if err != nil {
		return nil, err
	}
	return hash.Keccak256(encoded), nil
}
