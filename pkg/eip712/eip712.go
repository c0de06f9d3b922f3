// Package eip712 computes EIP-712 typed-data digests by wrapping
// github.com/ethereum/go-ethereum/signer/core/apitypes, which already
// implements the domain separator and recursive struct-hash algorithm the
// standard defines.
package eip712

import (
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/web3kit-go/core/pkg/errkind"
)

// TypedData is the EIP-712 payload: type definitions, primary type,
// domain, and message.
type TypedData = apitypes.TypedData

// Types is the map of struct-name to field definitions.
type Types = apitypes.Types

// TypeDefinition describes one field of a struct type.
type TypeDefinition = apitypes.Type

// TypedDataDomain is the EIP-712 domain separator's source fields.
type TypedDataDomain = apitypes.TypedDataDomain

// TypedDataMessage is the "message" object being signed, keyed by field
// name.
type TypedDataMessage = apitypes.TypedDataMessage

// DomainSeparator returns the 32-byte domain separator hash for td.domain.
func DomainSeparator(td TypedData) ([]byte, error) {
	hash, err := td.HashStruct("EIP712Domain", td.Domain.Map())
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "failed to hash EIP-712 domain", err)
	}
	return hash, nil
}

// StructHash returns the 32-byte struct hash of td.Message under td's
// PrimaryType.
func StructHash(td TypedData) ([]byte, error) {
	hash, err := td.HashStruct(td.PrimaryType, td.Message)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "failed to hash EIP-712 message", err)
	}
	return hash, nil
}

// Digest returns the final 32-byte digest that gets signed:
// keccak256("\x19\x01" || domainSeparator || structHash).
func Digest(td TypedData) ([]byte, error) {
	digest, _, err := apitypes.TypedDataAndHash(td)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidInput, "failed to compute EIP-712 digest", err)
	}
	return digest, nil
}
