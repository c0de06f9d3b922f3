package sr25519_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/web3kit-go/core/pkg/sr25519"
)

func seedOf(b byte) []byte {
	out := make([]byte, 32)
	out[0] = b
	out[31] = b ^ 0xaa
	return out
}

func TestSignVerifyRoundTrip(t *testing.T) {
	seed := seedOf(1)
	pub, err := sr25519.PublicKey(seed)
	require.NoError(t, err)
	require.Len(t, pub, sr25519.PublicKeySize)

	msg := []byte("hello sr25519")
	sig, err := sr25519.Sign(seed, msg)
	require.NoError(t, err)
	require.Len(t, sig, sr25519.SignatureSize)

	require.NoError(t, sr25519.Verify(pub, msg, sig))
}

func TestSignIsDeterministic(t *testing.T) {
	seed := seedOf(2)
	msg := []byte("deterministic")

	sig1, err := sr25519.Sign(seed, msg)
	require.NoError(t, err)
	sig2, err := sr25519.Sign(seed, msg)
	require.NoError(t, err)
	require.Equal(t, sig1, sig2)
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	seed := seedOf(3)
	pub, err := sr25519.PublicKey(seed)
	require.NoError(t, err)

	sig, err := sr25519.Sign(seed, []byte("correct"))
	require.NoError(t, err)

	require.Error(t, sr25519.Verify(pub, []byte("tampered"), sig))
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	sigSeed := seedOf(4)
	otherPub, err := sr25519.PublicKey(seedOf(5))
	require.NoError(t, err)

	msg := []byte("message")
	sig, err := sr25519.Sign(sigSeed, msg)
	require.NoError(t, err)

	require.Error(t, sr25519.Verify(otherPub, msg, sig))
}

func TestRejectsBadSeedLength(t *testing.T) {
	_, err := sr25519.PublicKey([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestRejectsBadSignatureLength(t *testing.T) {
	pub, err := sr25519.PublicKey(seedOf(6))
	require.NoError(t, err)
	require.Error(t, sr25519.Verify(pub, []byte("msg"), []byte{1, 2, 3}))
}

func TestDeriveRejectsNonHardenedIndex(t *testing.T) {
	chainCode := make([]byte, 32)
	_, _, err := sr25519.Derive(seedOf(7), chainCode, 0)
	require.Error(t, err)
}

func TestDeriveIsDeterministicAndHardened(t *testing.T) {
	seed := seedOf(8)
	chainCode := make([]byte, 32)
	chainCode[0] = 0x01

	childSeed1, childChainCode1, err := sr25519.Derive(seed, chainCode, sr25519.HardenedOffset)
	require.NoError(t, err)
	require.Len(t, childSeed1, 32)
	require.Len(t, childChainCode1, 32)

	childSeed2, childChainCode2, err := sr25519.Derive(seed, chainCode, sr25519.HardenedOffset)
	require.NoError(t, err)
	require.Equal(t, childSeed1, childSeed2)
	require.Equal(t, childChainCode1, childChainCode2)
	require.NotEqual(t, seed, childSeed1)
}
