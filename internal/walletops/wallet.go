// Package walletops wires this module's BIP-39/BIP-32/secp256k1/keystore
// primitives into the small set of operations a CLI wallet needs: derive a
// key from a mnemonic, load one from a v3 keystore, and sign either a plain
// message or an EIP-712 typed-data payload.
package walletops

import (
	"math/big"

	"github.com/web3kit-go/core/pkg/addr"
	"github.com/web3kit-go/core/pkg/bip32"
	"github.com/web3kit-go/core/pkg/bip39"
	"github.com/web3kit-go/core/pkg/eip712"
	"github.com/web3kit-go/core/pkg/errkind"
	"github.com/web3kit-go/core/pkg/hash"
	"github.com/web3kit-go/core/pkg/kdf"
	"github.com/web3kit-go/core/pkg/keystore"
	"github.com/web3kit-go/core/pkg/secp256k1"
	"github.com/web3kit-go/core/pkg/tx"
)

// Wallet is a single derived secp256k1 key pair with its Ethereum address.
type Wallet struct {
	PrivateKey *secp256k1.PrivateKey
	Address    addr.Address
}

func fromPrivateKey(priv *secp256k1.PrivateKey) *Wallet {
	rawAddr := priv.PublicKey().Address()
	var a addr.Address
	copy(a[:], rawAddr[:])
	return &Wallet{PrivateKey: priv, Address: a}
}

// FromMnemonic derives a wallet from a BIP-39 mnemonic and passphrase at
// the given BIP-32 derivation path (e.g. "m/44'/60'/0'/0/0").
func FromMnemonic(mnemonic, passphrase, derivationPath string) (*Wallet, error) {
	seed, err := bip39.SeedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	master, err := bip32.NewMaster(seed)
	if err != nil {
		return nil, err
	}
	indexes, err := ParseDerivationPath(derivationPath)
	if err != nil {
		return nil, err
	}
	node, err := master.DerivePath(indexes...)
	if err != nil {
		return nil, err
	}
	raw, err := node.PrivateKeyBytes()
	if err != nil {
		return nil, err
	}
	priv, err := secp256k1.PrivateKeyFromBytes(raw)
	if err != nil {
		return nil, err
	}
	return fromPrivateKey(priv), nil
}

// FromPrivateKeyBytes wraps a raw 32-byte secp256k1 scalar as a wallet.
func FromPrivateKeyBytes(raw []byte) (*Wallet, error) {
	priv, err := secp256k1.PrivateKeyFromBytes(raw)
	if err != nil {
		return nil, err
	}
	return fromPrivateKey(priv), nil
}

// FromKeystore decrypts a v3 keystore file with password and returns the
// wallet it contains.
func FromKeystore(v3 *keystore.V3, password string) (*Wallet, error) {
	raw, err := keystore.Decrypt(v3, password)
	if err != nil {
		return nil, err
	}
	return FromPrivateKeyBytes(raw)
}

// EncryptToKeystore encrypts w's private key under password using scrypt,
// producing a v3 keystore tagged with w's address.
func (w *Wallet) EncryptToKeystore(password string, params kdf.ScryptParams) (*keystore.V3, error) {
	return keystore.EncryptScrypt(w.PrivateKey.Bytes(), password, w.Address.Hex(), params)
}

// personalMessagePrefix is the EIP-191 "personal_sign" prefix.
const personalMessagePrefix = "\x19Ethereum Signed Message:\n"

// personalMessageHash returns the EIP-191 digest of message:
// keccak256("\x19Ethereum Signed Message:\n" || len(message) || message).
func personalMessageHash(message []byte) []byte {
	prefix := personalMessagePrefix + itoa(len(message))
	return hash.Keccak256(append([]byte(prefix), message...))
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// SignPersonalMessage signs message using the EIP-191 personal-message
// convention and returns a 65-byte r||s||v signature with v in {27,28}.
func (w *Wallet) SignPersonalMessage(message []byte) ([]byte, error) {
	digest := personalMessageHash(message)
	sig, err := secp256k1.Sign(digest, w.PrivateKey)
	if err != nil {
		return nil, err
	}
	out := sig.Bytes65()
	out[64] += 27
	return out, nil
}

// SignTypedData signs an EIP-712 typed-data payload and returns a 65-byte
// r||s||v signature with v in {27,28}.
func (w *Wallet) SignTypedData(td eip712.TypedData) ([]byte, error) {
	digest, err := eip712.Digest(td)
	if err != nil {
		return nil, err
	}
	sig, err := secp256k1.Sign(digest, w.PrivateKey)
	if err != nil {
		return nil, err
	}
	out := sig.Bytes65()
	out[64] += 27
	return out, nil
}

// SignDigest signs a pre-computed 32-byte digest directly (used for
// transaction signing hashes, which carry their own domain separation).
func (w *Wallet) SignDigest(digest []byte) (*secp256k1.Signature, error) {
	if len(digest) != 32 {
		return nil, errkind.New(errkind.InvalidInput, "digest must be 32 bytes")
	}
	return secp256k1.Sign(digest, w.PrivateKey)
}

// SignAuthorization signs an EIP-7702 authorization tuple granting address's
// code to the account at nonce on chainID, returning an Authorization with
// its YParity/R/S populated from the signature.
func (w *Wallet) SignAuthorization(chainID *big.Int, address addr.Address, nonce uint64) (*tx.Authorization, error) {
	digest := tx.AuthorizationSigningHash(chainID, address, nonce)
	sig, err := w.SignDigest(digest)
	if err != nil {
		return nil, err
	}
	return &tx.Authorization{
		ChainID: chainID,
		Address: address,
		Nonce:   nonce,
		YParity: sig.V,
		R:       sig.R,
		S:       sig.S,
	}, nil
}

// ApplyEIP155 returns the EIP-155 replay-protected encoding
// (2*chainID + 35 + v) of a raw {0,1} recovery id v for the given chain ID.
func ApplyEIP155(v byte, chainID *big.Int) *big.Int {
	out := new(big.Int).Mul(chainID, big.NewInt(2))
	out.Add(out, big.NewInt(35+int64(v)))
	return out
}
