// Package userop computes ERC-4337 UserOperation hashes for EntryPoint
// versions 0.6, 0.7, and 0.8, built on this module's own ABI encoder
// (pkg/abi) and Keccak-256 primitive (pkg/hash) — the same primitives the
// EntryPoint contract itself combines to produce the hash a bundler
// signature must cover.
package userop

import (
	"encoding/hex"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	gethmath "github.com/ethereum/go-ethereum/common/math"

	"github.com/web3kit-go/core/pkg/abi"
	"github.com/web3kit-go/core/pkg/addr"
	"github.com/web3kit-go/core/pkg/eip712"
	"github.com/web3kit-go/core/pkg/errkind"
	"github.com/web3kit-go/core/pkg/hash"
)

func addrToCommon(a addr.Address) common.Address {
	return common.Address(a)
}

func toBytes32(b []byte) [32]byte {
	var out [32]byte
	copy(out[:], b)
	return out
}

// EntryPointVersion identifies the packed-field layout a UserOperation
// follows.
type EntryPointVersion int

const (
	// V06 is the original EntryPoint 0.6 layout with unpacked gas fields.
	V06 EntryPointVersion = iota
	// V07 packs verification/call gas limits and fee fields into 32-byte
	// slots, and splits paymasterAndData into typed sub-fields.
	V07
	// V08 keeps EntryPoint 0.7's packed field layout, but hashes it as an
	// EIP-712 typed-data digest rather than through the v0.6/v0.7 ad-hoc
	// abi.encode/keccak wrap.
	V08
)

// packedUserOpEIP712Types is the type set EntryPoint 0.8 defines for
// signing a PackedUserOperation: the EIP-712 domain plus the primary
// struct type, field order matching the spec's
// "PackedUserOperation(address sender,uint256 nonce,bytes initCode,bytes
// callData,bytes32 accountGasLimits,uint256 preVerificationGas,bytes32
// gasFees,bytes paymasterAndData)" signature.
var packedUserOpEIP712Types = eip712.Types{
	"EIP712Domain": []eip712.TypeDefinition{
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	"PackedUserOperation": []eip712.TypeDefinition{
		{Name: "sender", Type: "address"},
		{Name: "nonce", Type: "uint256"},
		{Name: "initCode", Type: "bytes"},
		{Name: "callData", Type: "bytes"},
		{Name: "accountGasLimits", Type: "bytes32"},
		{Name: "preVerificationGas", Type: "uint256"},
		{Name: "gasFees", Type: "bytes32"},
		{Name: "paymasterAndData", Type: "bytes"},
	},
}

func hexString(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// UserOperation is EntryPoint 0.6's unpacked account-abstraction
// transaction shape.
type UserOperation struct {
	Sender               addr.Address
	Nonce                *big.Int
	InitCode             []byte
	CallData             []byte
	CallGasLimit         *big.Int
	VerificationGasLimit *big.Int
	PreVerificationGas   *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	PaymasterAndData     []byte
	Signature            []byte
}

// PackedUserOperation is EntryPoint 0.7/0.8's packed layout, where gas
// limits and fees are combined into 32-byte slots and paymaster fields are
// split out explicitly.
type PackedUserOperation struct {
	Sender             addr.Address
	Nonce              *big.Int
	InitCode           []byte
	CallData           []byte
	VerificationGasLimit   *big.Int
	CallGasLimit           *big.Int
	PreVerificationGas     *big.Int
	MaxPriorityFeePerGas   *big.Int
	MaxFeePerGas           *big.Int
	Paymaster                    addr.Address
	PaymasterVerificationGasLimit *big.Int
	PaymasterPostOpGasLimit       *big.Int
	PaymasterData                 []byte
	Signature                     []byte
}

func pack16x2(hi, lo *big.Int) []byte {
	out := make([]byte, 32)
	hiBytes := hi.Bytes()
	loBytes := lo.Bytes()
	copy(out[16-len(hiBytes):16], hiBytes)
	copy(out[32-len(loBytes):32], loBytes)
	return out
}

func (p PackedUserOperation) accountGasLimits() []byte {
	return pack16x2(p.VerificationGasLimit, p.CallGasLimit)
}

func (p PackedUserOperation) gasFees() []byte {
	return pack16x2(p.MaxPriorityFeePerGas, p.MaxFeePerGas)
}

func (p PackedUserOperation) paymasterAndData() []byte {
	if p.Paymaster.IsZero() {
		return nil
	}
	out := make([]byte, 0, 20+16+16+len(p.PaymasterData))
	out = append(out, p.Paymaster.Bytes()...)
	out = append(out, pack16x2(p.PaymasterVerificationGasLimit, p.PaymasterPostOpGasLimit)...)
	out = append(out, p.PaymasterData...)
	return out
}

// PackV06 hashes the EntryPoint-0.6 fields of op into its pre-wrap hash.
func hashV06(op UserOperation) ([]byte, error) {
	encoded, err := abi.EncodeArgs(
		[]string{"address", "uint256", "bytes32", "bytes32", "uint256", "uint256", "uint256", "uint256", "uint256", "bytes32"},
		[]interface{}{
			addrToCommon(op.Sender),
			op.Nonce,
			toBytes32(hash.Keccak256(op.InitCode)),
			toBytes32(hash.Keccak256(op.CallData)),
			op.CallGasLimit,
			op.VerificationGasLimit,
			op.PreVerificationGas,
			op.MaxFeePerGas,
			op.MaxPriorityFeePerGas,
			toBytes32(hash.Keccak256(op.PaymasterAndData)),
		},
	)
	if err != nil {
		return nil, err
	}
	return hash.Keccak256(encoded), nil
}

func hashPacked(p PackedUserOperation) ([]byte, error) {
	var accountGasLimits, gasFees [32]byte
	copy(accountGasLimits[:], p.accountGasLimits())
	copy(gasFees[:], p.gasFees())

	encoded, err := abi.EncodeArgs(
		[]string{"address", "uint256", "bytes32", "bytes32", "bytes32", "uint256", "bytes32", "bytes32"},
		[]interface{}{
			addrToCommon(p.Sender),
			p.Nonce,
			toBytes32(hash.Keccak256(p.InitCode)),
			toBytes32(hash.Keccak256(p.CallData)),
			accountGasLimits,
			p.PreVerificationGas,
			gasFees,
			toBytes32(hash.Keccak256Bytes(p.paymasterAndData())),
		},
	)
	if err != nil {
		return nil, err
	}
	return hash.Keccak256Bytes(encoded), nil
}

// hashV08 computes EntryPoint 0.8's EIP-712 digest over p, under domain
// {name="Account Abstraction EntryPoint", version="0.8", chainId,
// verifyingContract=entryPoint}.
func hashV08(p PackedUserOperation, entryPoint addr.Address, chainID *big.Int) ([]byte, error) {
	td := eip712.TypedData{
		Types:       packedUserOpEIP712Types,
		PrimaryType: "PackedUserOperation",
		Domain: eip712.TypedDataDomain{
			Name:              "Account Abstraction EntryPoint",
			Version:           "0.8",
			ChainId:           (*gethmath.HexOrDecimal256)(chainID),
			VerifyingContract: entryPoint.Hex(),
		},
		Message: eip712.TypedDataMessage{
			"sender":             p.Sender.Hex(),
			"nonce":              p.Nonce,
			"initCode":           hexString(p.InitCode),
			"callData":           hexString(p.CallData),
			"accountGasLimits":   hexString(p.accountGasLimits()),
			"preVerificationGas": p.PreVerificationGas,
			"gasFees":            hexString(p.gasFees()),
			"paymasterAndData":   hexString(p.paymasterAndData()),
		},
	}
	return eip712.Digest(td)
}

// Hash computes the final UserOperation hash a wallet signs. For V06 and
// V07 that is keccak256(abi.encode(innerHash, entryPoint, chainId)); for
// V08 it is the EIP-712 digest computed by hashV08.
func Hash(version EntryPointVersion, op interface{}, entryPoint addr.Address, chainID *big.Int) ([]byte, error) {
	if version == V08 {
		packed, ok := op.(PackedUserOperation)
		if !ok {
			return nil, errkind.New(errkind.InvalidInput, "V08 requires a PackedUserOperation value")
		}
		return hashV08(packed, entryPoint, chainID)
	}

	var inner []byte
	var err error

	switch version {
	case V06:
		unpacked, ok := op.(UserOperation)
		if !ok {
			return nil, errkind.New(errkind.InvalidInput, "V06 requires a UserOperation value")
		}
		inner, err = hashV06(unpacked)
	case V07:
		packed, ok := op.(PackedUserOperation)
		if !ok {
			return nil, errkind.New(errkind.InvalidInput, "V07 requires a PackedUserOperation value")
		}
		inner, err = hashPacked(packed)
	default:
		return nil, errkind.New(errkind.InvalidInput, "unknown entry point version")
	}
	if err != nil {
		return nil, err
	}

	encoded, err := abi.EncodeArgs(
		[]string{"bytes32", "address", "uint256"},
		[]interface{}{toBytes32(inner), addrToCommon(entryPoint), chainID},
	)
	if err != nil {
		return nil, err
	}
	return hash.Keccak256(encoded), nil
}
