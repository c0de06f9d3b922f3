// Package addr implements the 20-byte Ethereum address type with EIP-55
// checksum encoding and verification.
package addr

import (
	"encoding/hex"
	"strings"

	"github.com/web3kit-go/core/pkg/errkind"
	"github.com/web3kit-go/core/pkg/hash"
)

// Address is a 20-byte account or contract address.
type Address [20]byte

// Zero is the all-zero address.
var Zero = Address{}

// FromHex parses a 40-hex-char address, with or without 0x prefix, in any
// case. It does not enforce EIP-55 checksum validity; use FromHexStrict for
// that.
func FromHex(s string) (Address, error) {
	s = strip0x(s)
	if len(s) != 40 {
		return Address{}, errkind.New(errkind.InvalidInput, "address must be 40 hex characters")
	}
	b, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return Address{}, errkind.Wrap(errkind.InvalidInput, "invalid address hex", err)
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// FromHexStrict parses like FromHex, but additionally requires the input to
// be either all-lowercase, all-uppercase, or a valid EIP-55 checksum.
func FromHexStrict(s string) (Address, error) {
	a, err := FromHex(s)
	if err != nil {
		return Address{}, err
	}
	body := strip0x(s)
	if !IsValid(body) && !verifyChecksumCasing(a, body) {
		return Address{}, errkind.New(errkind.InvalidChecksum, "address fails EIP-55 checksum")
	}
	return a, nil
}

// Hex returns the lowercase 0x-prefixed hex form.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Bytes returns a copy of the address bytes.
func (a Address) Bytes() []byte {
	out := make([]byte, 20)
	copy(out, a[:])
	return out
}

// IsZero reports whether the address is all-zero.
func (a Address) IsZero() bool { return a == Zero }

// ToChecksum returns the EIP-55 mixed-case checksummed representation.
func (a Address) ToChecksum() string {
	lower := hex.EncodeToString(a[:])
	digest := hash.Keccak256([]byte(lower))

	out := make([]byte, len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= '0' && c <= '9' {
			out[i] = c
			continue
		}
		// hash nibble for character i: high nibble of byte i/2 when i is
		// even, low nibble otherwise.
		var nibble byte
		if i%2 == 0 {
			nibble = digest[i/2] >> 4
		} else {
			nibble = digest[i/2] & 0x0f
		}
		if nibble >= 8 {
			out[i] = c - 'a' + 'A'
		} else {
			out[i] = c
		}
	}
	return "0x" + string(out)
}

// IsValidChecksum reports whether the address's canonical checksum matches
// itself (trivially true — checksum is derived from the bytes, not an input
// string). Use VerifyChecksum to validate a caller-supplied string.
func (a Address) IsValidChecksum() bool {
	return verifyChecksumCasing(a, strip0x(a.ToChecksum()))
}

// VerifyChecksum reports whether s is a correctly EIP-55-checksummed
// rendering of its own bytes.
func VerifyChecksum(s string) bool {
	a, err := FromHex(s)
	if err != nil {
		return false
	}
	return verifyChecksumCasing(a, strip0x(s))
}

func verifyChecksumCasing(a Address, body string) bool {
	want := strip0x(a.ToChecksum())
	return body == want
}

// IsValid reports whether s is a syntactically valid address in any of the
// three accepted forms: all-lowercase, all-uppercase, or correctly
// EIP-55-checksummed.
func IsValid(s string) bool {
	body := strip0x(s)
	if len(body) != 40 {
		return false
	}
	if _, err := hex.DecodeString(strings.ToLower(body)); err != nil {
		return false
	}
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}
	return VerifyChecksum(s)
}

func strip0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
