package hash_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/web3kit-go/core/pkg/hash"
)

func TestKeccak256KnownAnswers(t *testing.T) {
	empty := hash.Keccak256()
	require.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a47", hex.EncodeToString(empty[:]))

	abc := hash.Keccak256([]byte("abc"))
	require.Equal(t, "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c4", hex.EncodeToString(abc[:]))
}

func TestKeccak256Streaming(t *testing.T) {
	a := hash.Keccak256([]byte("abc"))
	b := hash.Keccak256([]byte("ab"), []byte("c"))
	require.Equal(t, a, b)
}

func TestHMACKnownLength(t *testing.T) {
	require.Len(t, hash.HMACSHA256([]byte("key"), []byte("msg")), 32)
	require.Len(t, hash.HMACSHA512([]byte("key"), []byte("msg")), 64)
}

func TestHash160Length(t *testing.T) {
	out := hash.Hash160([]byte("hello"))
	require.Len(t, out, 20)
}
