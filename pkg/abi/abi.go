// Package abi implements Solidity ABI v2 argument encoding and decoding by
// wrapping github.com/ethereum/go-ethereum/accounts/abi's type system and
// head/tail packer, which already implements the static/dynamic layout
// rules the Solidity ABI specification defines. Function and event
// selectors are computed independently via this module's own Keccak-256
// primitive (pkg/hash) rather than go-ethereum's Method.Sig helper, so
// selector derivation stays a visible, traceable step rather than a detail
// hidden inside the upstream type.
package abi

import (
	"math/big"
	"reflect"
	"strconv"
	"strings"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/web3kit-go/core/pkg/errkind"
	"github.com/web3kit-go/core/pkg/hash"
)

// Selector4 is a 4-byte Solidity function or error selector.
type Selector4 [4]byte

// Selector computes the 4-byte selector for a canonical signature string,
// e.g. "transfer(address,uint256)".
func Selector(signature string) Selector4 {
	digest := hash.Keccak256([]byte(signature))
	var sel Selector4
	copy(sel[:], digest[:4])
	return sel
}

// TopicHash computes the 32-byte event topic0 for a canonical event
// signature string, e.g. "Transfer(address,address,uint256)".
func TopicHash(signature string) [32]byte {
	var out [32]byte
	copy(out[:], hash.Keccak256Bytes([]byte(signature)))
	return out
}

func buildArguments(types []string) (gethabi.Arguments, error) {
	args := make(gethabi.Arguments, len(types))
	for i, t := range types {
		typ, err := gethabi.NewType(t, "", nil)
		if err != nil {
			return nil, errkind.Wrap(errkind.AbiEncodeError, "invalid abi type \""+t+"\"", err)
		}
		args[i] = gethabi.Argument{Type: typ}
	}
	return args, nil
}

// EncodeArgs ABI-encodes values according to types (standard, non-packed
// encoding), with no leading selector.
func EncodeArgs(types []string, values []interface{}) ([]byte, error) {
	args, err := buildArguments(types)
	if err != nil {
		return nil, err
	}
	packed, err := args.Pack(values...)
	if err != nil {
		return nil, errkind.Wrap(errkind.AbiEncodeError, "failed to pack arguments", err)
	}
	return packed, nil
}

// DecodeArgs reverses EncodeArgs.
func DecodeArgs(types []string, data []byte) ([]interface{}, error) {
	args, err := buildArguments(types)
	if err != nil {
		return nil, err
	}
	values, err := args.Unpack(data)
	if err != nil {
		return nil, errkind.Wrap(errkind.AbiDecodeError, "failed to unpack arguments", err)
	}
	return values, nil
}

// EncodeCall builds a full calldata blob: the 4-byte selector for
// signature followed by the ABI-encoded argument values.
func EncodeCall(signature string, types []string, values []interface{}) ([]byte, error) {
	packed, err := EncodeArgs(types, values)
	if err != nil {
		return nil, err
	}
	sel := Selector(signature)
	out := make([]byte, 0, 4+len(packed))
	out = append(out, sel[:]...)
	out = append(out, packed...)
	return out, nil
}

// EncodePacked implements Solidity's non-standard tightly-packed encoding
// (the "encodePacked" used by EIP-191/EIP-712 helpers and by contracts that
// hash their own calldata): each value is concatenated at its natural
// width with no padding, offsets, or length prefixes. uint<N> packs as
// N/8 bytes big-endian, address as 20 bytes, bytes<N> as N raw bytes,
// bytes as the raw slice, and string as its UTF-8 bytes. Arrays and tuples
// are not supported in packed form, matching the Solidity restriction.
func EncodePacked(types []string, values []interface{}) ([]byte, error) {
	if len(types) != len(values) {
		return nil, errkind.New(errkind.AbiEncodeError, "encodePacked: types and values length mismatch")
	}
	var out []byte
	for i, t := range types {
		b, err := packValue(t, values[i])
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func packValue(t string, v interface{}) ([]byte, error) {
	switch {
	case t == "address":
		return packAddress(v)
	case t == "bytes":
		b, ok := v.([]byte)
		if !ok {
			return nil, errkind.New(errkind.AbiEncodeError, "encodePacked: \"bytes\" value must be []byte")
		}
		return b, nil
	case t == "string":
		s, ok := v.(string)
		if !ok {
			return nil, errkind.New(errkind.AbiEncodeError, "encodePacked: \"string\" value must be a string")
		}
		return []byte(s), nil
	case strings.HasPrefix(t, "uint"):
		bits, err := strconv.Atoi(strings.TrimPrefix(t, "uint"))
		if err != nil || bits <= 0 || bits > 256 || bits%8 != 0 {
			return nil, errkind.New(errkind.AbiEncodeError, "encodePacked: invalid type \""+t+"\"")
		}
		return packUint(v, bits/8)
	case strings.HasPrefix(t, "bytes"):
		n, err := strconv.Atoi(strings.TrimPrefix(t, "bytes"))
		if err != nil || n <= 0 || n > 32 {
			return nil, errkind.New(errkind.AbiEncodeError, "encodePacked: invalid type \""+t+"\"")
		}
		return packFixedBytes(v, n)
	default:
		return nil, errkind.New(errkind.AbiEncodeError, "encodePacked: unsupported type \""+t+"\" (arrays and tuples are not supported in packed form)")
	}
}

func packAddress(v interface{}) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Array || rv.Len() != 20 || rv.Type().Elem().Kind() != reflect.Uint8 {
		return nil, errkind.New(errkind.AbiEncodeError, "encodePacked: \"address\" value must be a [20]byte array")
	}
	out := make([]byte, 20)
	reflect.Copy(reflect.ValueOf(out), rv)
	return out, nil
}

func packUint(v interface{}, nbytes int) ([]byte, error) {
	n, err := toBigInt(v)
	if err != nil {
		return nil, err
	}
	if n.Sign() < 0 {
		return nil, errkind.New(errkind.AbiEncodeError, "encodePacked: negative value for unsigned type")
	}
	if n.BitLen() > nbytes*8 {
		return nil, errkind.New(errkind.AbiEncodeError, "encodePacked: value overflows declared width")
	}
	out := make([]byte, nbytes)
	n.FillBytes(out)
	return out, nil
}

func packFixedBytes(v interface{}, n int) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, errkind.New(errkind.AbiEncodeError, "encodePacked: \"bytesN\" value must be []byte")
	}
	if len(b) != n {
		return nil, errkind.New(errkind.AbiEncodeError, "encodePacked: bytesN value has wrong length")
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func toBigInt(v interface{}) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		return n, nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case int64:
		return big.NewInt(n), nil
	case int:
		return big.NewInt(int64(n)), nil
	default:
		return nil, errkind.New(errkind.AbiEncodeError, "encodePacked: unsupported integer value type")
	}
}

// DecodeCall splits calldata into its 4-byte selector and decoded
// arguments per types.
func DecodeCall(types []string, calldata []byte) (Selector4, []interface{}, error) {
	if len(calldata) < 4 {
		return Selector4{}, nil, errkind.New(errkind.AbiDecodeError, "calldata shorter than a selector")
	}
	var sel Selector4
	copy(sel[:], calldata[:4])
	values, err := DecodeArgs(types, calldata[4:])
	if err != nil {
		return sel, nil, err
	}
	return sel, values, nil
}

var (
	errorSelector = Selector("Error(string)")
	panicSelector = Selector("Panic(uint256)")
)

// panicReasons maps Solidity's Panic(uint256) codes to the human-readable
// condition the compiler's documentation assigns them.
var panicReasons = map[int64]string{
	0x01: "assertion failed",
	0x11: "arithmetic operation overflowed outside of an unchecked block",
	0x12: "division or modulo by zero",
	0x21: "tried to convert a value into an enum that is out of range",
	0x22: "accessed a storage byte array that is incorrectly encoded",
	0x31: "called .pop() on an empty array",
	0x32: "accessed an array, bytes, or slice at an out-of-bounds or negative index",
	0x41: "allocated too much memory or created an array that is too large",
	0x51: "called a zero-initialized variable of internal function type",
}

// CustomErrorDef describes one Solidity custom error (`error Foo(uint256
// x)`) so DecodeRevert can unpack its arguments given only its selector.
type CustomErrorDef struct {
	Name  string
	Types []string
}

// CustomErrorRegistry indexes CustomErrorDef by 4-byte selector, letting
// DecodeRevert recognize application-specific custom errors it otherwise
// has no way to distinguish from arbitrary revert data.
type CustomErrorRegistry map[Selector4]CustomErrorDef

// RevertReason interprets the return data of a reverted call, recognizing
// the standard Error(string) and Panic(uint256) encodings Solidity emits
// for require/revert and for runtime panics respectively, plus any custom
// errors named in a caller-supplied registry. Unrecognized selectors are
// returned verbatim as raw bytes.
type RevertReason struct {
	// Message is set for Error(string) reverts.
	Message string
	// PanicCode is set for Panic(uint256) reverts.
	PanicCode *big.Int
	// PanicReason is the human-readable condition for PanicCode, when known.
	PanicReason string
	// Name and Args are set when the selector matches an entry in the
	// registry passed to DecodeRevert.
	Name string
	Args []interface{}
	// Raw holds the full return data for unrecognized selectors, for data
	// shorter than a selector, and for registry matches.
	Raw []byte
}

// DecodeRevert interprets data as the return data of a reverted call.
// registry may be nil; it is only consulted for selectors that are neither
// Error(string) nor Panic(uint256).
func DecodeRevert(data []byte, registry CustomErrorRegistry) (*RevertReason, error) {
	if len(data) < 4 {
		return &RevertReason{Raw: data}, nil
	}
	var sel Selector4
	copy(sel[:], data[:4])

	switch sel {
	case errorSelector:
		values, err := DecodeArgs([]string{"string"}, data[4:])
		if err != nil {
			return nil, err
		}
		msg, _ := values[0].(string)
		return &RevertReason{Message: msg}, nil
	case panicSelector:
		values, err := DecodeArgs([]string{"uint256"}, data[4:])
		if err != nil {
			return nil, err
		}
		code, _ := values[0].(*big.Int)
		reason := &RevertReason{PanicCode: code}
		if code != nil {
			if msg, ok := panicReasons[code.Int64()]; ok {
				reason.PanicReason = msg
			}
		}
		return reason, nil
	default:
		if def, ok := registry[sel]; ok {
			values, err := DecodeArgs(def.Types, data[4:])
			if err != nil {
				return nil, err
			}
			return &RevertReason{Name: def.Name, Args: values, Raw: data}, nil
		}
		return &RevertReason{Raw: data}, nil
	}
}
