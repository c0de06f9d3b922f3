// Package rlp implements the Recursive Length Prefix encoding from the
// Ethereum Yellow Paper Appendix B as an explicit Item tree, independent of
// go-ethereum's reflection/struct-tag based rlp package: callers that need a
// generic nested byte-string/list value (rather than a tagged Go struct) use
// this package directly.
package rlp

import (
	"github.com/web3kit-go/core/pkg/errkind"
)

// Item is either a Bytes leaf or a List of Items. The zero value is an empty
// Bytes leaf.
type Item struct {
	isList bool
	bytes  []byte
	list   []Item
}

// Bytes wraps a byte string as a leaf Item.
func Bytes(b []byte) Item { return Item{bytes: b} }

// List wraps a sequence of Items as a list Item.
func List(items ...Item) Item { return Item{isList: true, list: items} }

// IsList reports whether the item is a list.
func (it Item) IsList() bool { return it.isList }

// BytesValue returns the leaf's byte string; empty for a list.
func (it Item) BytesValue() []byte { return it.bytes }

// ListValue returns the list's elements; nil for a leaf.
func (it Item) ListValue() []Item { return it.list }

// Encode serializes an Item per Appendix B.
func Encode(it Item) []byte {
	if it.isList {
		var payload []byte
		for _, child := range it.list {
			payload = append(payload, Encode(child)...)
		}
		return encodeLength(len(payload), 0xc0, 0xf7, payload)
	}
	return encodeString(it.bytes)
}

func encodeString(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return []byte{b[0]}
	}
	return encodeLength(len(b), 0x80, 0xb7, b)
}

func encodeLength(n int, shortBase, longBase byte, payload []byte) []byte {
	if n <= 55 {
		out := make([]byte, 0, 1+n)
		out = append(out, shortBase+byte(n))
		return append(out, payload...)
	}
	lenBytes := minimalBigEndian(uint64(n))
	out := make([]byte, 0, 1+len(lenBytes)+n)
	out = append(out, longBase+byte(len(lenBytes)))
	out = append(out, lenBytes...)
	return append(out, payload...)
}

func minimalBigEndian(n uint64) []byte {
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = byte(n)
		n >>= 8
	}
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// Decode parses a single RLP item from the front of b, returning the item,
// the unconsumed remainder, and an error. Non-minimal length encodings
// (leading zero bytes in a long-form length, or a single sub-0x80 byte
// encoded via the 0x81 short-string form) are rejected.
func Decode(b []byte) (Item, []byte, error) {
	if len(b) == 0 {
		return Item{}, nil, errkind.New(errkind.InvalidInput, "rlp: empty input")
	}
	prefix := b[0]

	switch {
	case prefix < 0x80:
		return Item{bytes: b[0:1]}, b[1:], nil

	case prefix <= 0xb7:
		n := int(prefix - 0x80)
		if len(b) < 1+n {
			return Item{}, nil, errkind.New(errkind.InvalidInput, "rlp: short string truncated")
		}
		content := b[1 : 1+n]
		if n == 1 && content[0] < 0x80 {
			return Item{}, nil, errkind.New(errkind.InvalidInput, "rlp: non-minimal single-byte string encoding")
		}
		return Item{bytes: append([]byte(nil), content...)}, b[1+n:], nil

	case prefix <= 0xbf:
		lenOfLen := int(prefix - 0xb7)
		n, rest, err := decodeLongLength(b[1:], lenOfLen)
		if err != nil {
			return Item{}, nil, err
		}
		if len(rest) < n {
			return Item{}, nil, errkind.New(errkind.InvalidInput, "rlp: long string truncated")
		}
		return Item{bytes: append([]byte(nil), rest[:n]...)}, rest[n:], nil

	case prefix <= 0xf7:
		n := int(prefix - 0xc0)
		if len(b) < 1+n {
			return Item{}, nil, errkind.New(errkind.InvalidInput, "rlp: short list truncated")
		}
		items, err := decodeAll(b[1 : 1+n])
		if err != nil {
			return Item{}, nil, err
		}
		return Item{isList: true, list: items}, b[1+n:], nil

	default:
		lenOfLen := int(prefix - 0xf7)
		n, rest, err := decodeLongLength(rest0(b), lenOfLen)
		if err != nil {
			return Item{}, nil, err
		}
		if len(rest) < n {
			return Item{}, nil, errkind.New(errkind.InvalidInput, "rlp: long list truncated")
		}
		items, err := decodeAll(rest[:n])
		if err != nil {
			return Item{}, nil, err
		}
		return Item{isList: true, list: items}, rest[n:], nil
	}
}

func rest0(b []byte) []byte { return b[1:] }

func decodeLongLength(b []byte, lenOfLen int) (int, []byte, error) {
	if lenOfLen == 0 || lenOfLen > 8 {
		return 0, nil, errkind.New(errkind.InvalidInput, "rlp: invalid length-of-length")
	}
	if len(b) < lenOfLen {
		return 0, nil, errkind.New(errkind.InvalidInput, "rlp: truncated length field")
	}
	if b[0] == 0 {
		return 0, nil, errkind.New(errkind.InvalidInput, "rlp: non-minimal length encoding")
	}
	var n uint64
	for i := 0; i < lenOfLen; i++ {
		n = n<<8 | uint64(b[i])
	}
	if n <= 55 {
		return 0, nil, errkind.New(errkind.InvalidInput, "rlp: length should have used short form")
	}
	return int(n), b[lenOfLen:], nil
}

// decodeAll decodes b as a sequence of concatenated items (used for decoding
// a list's payload). It is unexported.
func decodeAll(b []byte) ([]Item, error) {
	var items []Item
	for len(b) > 0 {
		it, rest, err := Decode(b)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
		b = rest
	}
	return items, nil
}
