// Package keystore implements the Web3 Secret Storage Definition (the "v3
// keystore" format geth and most EVM wallets use) for encrypting a raw
// private key at rest: scrypt or PBKDF2 key derivation, AES-128-CTR
// encryption, and a Keccak-256 MAC binding the derived key to the
// ciphertext.
package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/web3kit-go/core/pkg/errkind"
	"github.com/web3kit-go/core/pkg/hash"
	"github.com/web3kit-go/core/pkg/kdf"
)

const (
	version    = 3
	cipherName = "aes-128-ctr"
)

// CipherParams holds the AES-CTR initialization vector.
type CipherParams struct {
	IV string `json:"iv"`
}

// KDFParams is the union of scrypt and PBKDF2 parameters; only the fields
// relevant to KDF are populated.
type KDFParams struct {
	DKLen int    `json:"dklen"`
	Salt  string `json:"salt"`

	// scrypt
	N int `json:"n,omitempty"`
	R int `json:"r,omitempty"`
	P int `json:"p,omitempty"`

	// pbkdf2
	C    int    `json:"c,omitempty"`
	PRF  string `json:"prf,omitempty"`
}

// CryptoSection is the "crypto" object of a v3 keystore.
type CryptoSection struct {
	Cipher       string       `json:"cipher"`
	CipherText   string       `json:"ciphertext"`
	CipherParams CipherParams `json:"cipherparams"`
	KDF          string       `json:"kdf"`
	KDFParams    KDFParams    `json:"kdfparams"`
	MAC          string       `json:"mac"`
}

// V3 is a Web3 Secret Storage v3 keystore file.
type V3 struct {
	Version int           `json:"version"`
	ID      string        `json:"id"`
	Address string        `json:"address,omitempty"`
	Crypto  CryptoSection `json:"crypto"`
}

// EncryptScrypt encrypts privateKey under password using scrypt key
// derivation and AES-128-CTR, producing a v3 keystore for address.
func EncryptScrypt(privateKey []byte, password, address string, params kdf.ScryptParams) (*V3, error) {
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, errkind.Wrap(errkind.EntropyUnavailable, "failed to read salt", err)
	}
	derivedKey, err := kdf.Scrypt([]byte(password), salt, params)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidPassword, "scrypt key derivation failed", err)
	}
	v3, err := encryptWithDerivedKey(privateKey, derivedKey, salt, address)
	if err != nil {
		return nil, err
	}
	v3.Crypto.KDF = "scrypt"
	v3.Crypto.KDFParams = KDFParams{
		DKLen: params.DKLen,
		Salt:  hex.EncodeToString(salt),
		N:     params.N,
		R:     params.R,
		P:     params.P,
	}
	return v3, nil
}

// EncryptPBKDF2 encrypts privateKey under password using PBKDF2-HMAC-SHA256
// key derivation and AES-128-CTR, producing a v3 keystore for address.
func EncryptPBKDF2(privateKey []byte, password, address string, iterations int) (*V3, error) {
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, errkind.Wrap(errkind.EntropyUnavailable, "failed to read salt", err)
	}
	const dkLen = 32
	derivedKey := kdf.PBKDF2SHA256([]byte(password), salt, iterations, dkLen)
	v3, err := encryptWithDerivedKey(privateKey, derivedKey, salt, address)
	if err != nil {
		return nil, err
	}
	v3.Crypto.KDF = "pbkdf2"
	v3.Crypto.KDFParams = KDFParams{
		DKLen: dkLen,
		Salt:  hex.EncodeToString(salt),
		C:     iterations,
		PRF:   "hmac-sha256",
	}
	return v3, nil
}

func encryptWithDerivedKey(privateKey, derivedKey, salt []byte, address string) (*V3, error) {
	if len(derivedKey) < 32 {
		return nil, errkind.New(errkind.InvalidPassword, "derived key too short")
	}
	block, err := aes.NewCipher(derivedKey[:16])
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "failed to initialize AES cipher", err)
	}
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, errkind.Wrap(errkind.EntropyUnavailable, "failed to read iv", err)
	}
	ciphertext := make([]byte, len(privateKey))
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext, privateKey)

	mac := hash.Keccak256(append(append([]byte{}, derivedKey[16:32]...), ciphertext...))

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, errkind.Wrap(errkind.EntropyUnavailable, "failed to generate keystore id", err)
	}

	return &V3{
		Version: version,
		ID:      id.String(),
		Address: address,
		Crypto: CryptoSection{
			Cipher:       cipherName,
			CipherText:   hex.EncodeToString(ciphertext),
			CipherParams: CipherParams{IV: hex.EncodeToString(iv)},
			MAC:          hex.EncodeToString(mac),
		},
	}, nil
}

// Decrypt recovers the raw private key from a v3 keystore, validating the
// MAC before decryption.
func Decrypt(v3 *V3, password string) ([]byte, error) {
	salt, err := hex.DecodeString(v3.Crypto.KDFParams.Salt)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "invalid salt encoding", err)
	}

	var derivedKey []byte
	switch v3.Crypto.KDF {
	case "scrypt":
		p := kdf.ScryptParams{
			N:     v3.Crypto.KDFParams.N,
			R:     v3.Crypto.KDFParams.R,
			P:     v3.Crypto.KDFParams.P,
			DKLen: v3.Crypto.KDFParams.DKLen,
		}
		derivedKey, err = kdf.Scrypt([]byte(password), salt, p)
		if err != nil {
			return nil, errkind.Wrap(errkind.InvalidPassword, "scrypt key derivation failed", err)
		}
	case "pbkdf2":
		derivedKey = kdf.PBKDF2SHA256([]byte(password), salt, v3.Crypto.KDFParams.C, v3.Crypto.KDFParams.DKLen)
	default:
		return nil, errkind.New(errkind.InvalidInput, fmt.Sprintf("unsupported kdf %q", v3.Crypto.KDF))
	}
	if len(derivedKey) < 32 {
		return nil, errkind.New(errkind.InvalidPassword, "derived key too short")
	}

	ciphertext, err := hex.DecodeString(v3.Crypto.CipherText)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "invalid ciphertext encoding", err)
	}
	wantMAC, err := hex.DecodeString(v3.Crypto.MAC)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "invalid mac encoding", err)
	}
	gotMAC := hash.Keccak256(append(append([]byte{}, derivedKey[16:32]...), ciphertext...))
	if subtle.ConstantTimeCompare(gotMAC, wantMAC) != 1 {
		return nil, errkind.New(errkind.InvalidPassword, "mac mismatch: wrong password or corrupted keystore")
	}

	iv, err := hex.DecodeString(v3.Crypto.CipherParams.IV)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "invalid iv encoding", err)
	}
	block, err := aes.NewCipher(derivedKey[:16])
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "failed to initialize AES cipher", err)
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCTR(block, iv).XORKeyStream(plaintext, ciphertext)
	return plaintext, nil
}

// MarshalJSON serializes v3 to its canonical JSON keystore file form.
func MarshalJSON(v3 *V3) ([]byte, error) {
	b, err := json.MarshalIndent(v3, "", "  ")
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "failed to marshal keystore", err)
	}
	return b, nil
}

// UnmarshalJSON parses a v3 keystore file.
func UnmarshalJSON(b []byte) (*V3, error) {
	var v3 V3
	if err := json.Unmarshal(b, &v3); err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "failed to parse keystore", err)
	}
	if v3.Version != version {
		return nil, errkind.New(errkind.InvalidInput, fmt.Sprintf("unsupported keystore version %d", v3.Version))
	}
	return &v3, nil
}
