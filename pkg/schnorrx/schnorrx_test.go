package schnorrx_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/web3kit-go/core/pkg/schnorrx"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	priv, err := schnorrx.PrivateKeyFromBytes(bytesOf(1))
	require.NoError(t, err)
	pub := schnorrx.PublicKeyXOnly(priv)

	msg := sha256.Sum256([]byte("hello schnorr"))
	sig, err := schnorrx.Sign(priv, msg)
	require.NoError(t, err)

	require.NoError(t, schnorrx.Verify(pub, msg, sig))
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	priv, err := schnorrx.PrivateKeyFromBytes(bytesOf(7))
	require.NoError(t, err)
	pub := schnorrx.PublicKeyXOnly(priv)

	msg := sha256.Sum256([]byte("correct"))
	other := sha256.Sum256([]byte("tampered"))
	sig, err := schnorrx.Sign(priv, msg)
	require.NoError(t, err)

	require.Error(t, schnorrx.Verify(pub, other, sig))
}

func bytesOf(b byte) []byte {
	out := make([]byte, 32)
	out[31] = b
	out[0] = b | 1
	return out
}
