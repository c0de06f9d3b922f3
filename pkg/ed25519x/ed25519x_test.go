package ed25519x_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/web3kit-go/core/pkg/ed25519x"
)

// RFC 8032 §7.1 test vector 1.
func TestRFC8032Vector1(t *testing.T) {
	seedBytes, err := hex.DecodeString("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f6")
	require.NoError(t, err)

	wantPub, err := hex.DecodeString("d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511")
	require.NoError(t, err)
	wantSig, err := hex.DecodeString("e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e06522490155" +
		"5fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b")
	require.NoError(t, err)

	pub, err := ed25519x.PublicKey(seedBytes)
	require.NoError(t, err)
	require.Equal(t, wantPub, pub)

	sig, err := ed25519x.Sign(seedBytes, []byte{})
	require.NoError(t, err)
	require.Equal(t, wantSig, sig)

	require.NoError(t, ed25519x.Verify(pub, []byte{}, sig))
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	seedBytes, err := hex.DecodeString("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	require.NoError(t, err)
	pub, err := ed25519x.PublicKey(seedBytes)
	require.NoError(t, err)
	sig, err := ed25519x.Sign(seedBytes, []byte("message"))
	require.NoError(t, err)
	sig[0] ^= 0xff
	require.Error(t, ed25519x.Verify(pub, []byte("message"), sig))
}

func TestRejectsBadSeedLength(t *testing.T) {
	_, err := ed25519x.PublicKey([]byte{1, 2, 3})
	require.Error(t, err)
}
