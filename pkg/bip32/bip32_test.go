package bip32_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/web3kit-go/core/pkg/bip32"
)

func TestMasterDerivationAndSerializationRoundTrip(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	master, err := bip32.NewMaster(seed)
	require.NoError(t, err)
	require.True(t, master.IsPrivate())

	serialized := master.String()
	require.Contains(t, serialized, "xprv")

	reparsed, err := bip32.ParseExtendedKey(serialized)
	require.NoError(t, err)

	privBytes, err := master.PrivateKeyBytes()
	require.NoError(t, err)
	reparsedPriv, err := reparsed.PrivateKeyBytes()
	require.NoError(t, err)
	require.Equal(t, privBytes, reparsedPriv)
}

func TestHardenedAndNormalDerivationDiffer(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	master, err := bip32.NewMaster(seed)
	require.NoError(t, err)

	hardened, err := master.Child(bip32.HardenedOffset)
	require.NoError(t, err)
	normal, err := master.Child(0)
	require.NoError(t, err)

	hardenedPub, err := hardened.PublicKeyBytes()
	require.NoError(t, err)
	normalPub, err := normal.PublicKeyBytes()
	require.NoError(t, err)
	require.NotEqual(t, hardenedPub, normalPub)
}

func TestNeuterStripsPrivateKey(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	master, err := bip32.NewMaster(seed)
	require.NoError(t, err)

	pubOnly, err := master.Neuter()
	require.NoError(t, err)
	require.False(t, pubOnly.IsPrivate())

	_, err = pubOnly.PrivateKeyBytes()
	require.Error(t, err)

	masterPub, err := master.PublicKeyBytes()
	require.NoError(t, err)
	neuteredPub, err := pubOnly.PublicKeyBytes()
	require.NoError(t, err)
	require.Equal(t, masterPub, neuteredPub)
}

func TestDerivePathMatchesSequentialChild(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	master, err := bip32.NewMaster(seed)
	require.NoError(t, err)

	viaPath, err := master.DerivePath(bip32.HardenedOffset, 1, bip32.HardenedOffset+2)
	require.NoError(t, err)

	step1, err := master.Child(bip32.HardenedOffset)
	require.NoError(t, err)
	step2, err := step1.Child(1)
	require.NoError(t, err)
	step3, err := step2.Child(bip32.HardenedOffset + 2)
	require.NoError(t, err)

	viaPathPriv, err := viaPath.PrivateKeyBytes()
	require.NoError(t, err)
	step3Priv, err := step3.PrivateKeyBytes()
	require.NoError(t, err)
	require.Equal(t, step3Priv, viaPathPriv)
}
