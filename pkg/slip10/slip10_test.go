package slip10_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/web3kit-go/core/pkg/slip10"
)

func TestMasterNodeIsDeterministic(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	n1, err := slip10.NewMasterNode(seed)
	require.NoError(t, err)
	n2, err := slip10.NewMasterNode(seed)
	require.NoError(t, err)
	require.Equal(t, n1, n2)
}

func TestDifferentSeedsProduceDifferentMasters(t *testing.T) {
	seedA, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	seedB, err := hex.DecodeString("fffefdfcfbfaf9f8f7f6f5f4f3f2f1f0")
	require.NoError(t, err)

	a, err := slip10.NewMasterNode(seedA)
	require.NoError(t, err)
	b, err := slip10.NewMasterNode(seedB)
	require.NoError(t, err)
	require.NotEqual(t, a.Key, b.Key)
	require.NotEqual(t, a.ChainCode, b.ChainCode)
}

func TestChildRejectsNonHardenedIndex(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	master, err := slip10.NewMasterNode(seed)
	require.NoError(t, err)

	_, err = master.Child(0)
	require.Error(t, err)

	_, err = master.Child(slip10.HardenedOffset - 1)
	require.Error(t, err)
}

func TestChildAcceptsHardenedIndex(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	master, err := slip10.NewMasterNode(seed)
	require.NoError(t, err)

	child, err := master.Child(slip10.HardenedOffset)
	require.NoError(t, err)
	require.NotEqual(t, master.Key, child.Key)
}

func TestDerivePathMatchesSequentialChild(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	master, err := slip10.NewMasterNode(seed)
	require.NoError(t, err)

	h := slip10.HardenedOffset
	viaPath, err := master.DerivePath(h, h+1, h+2)
	require.NoError(t, err)

	step1, err := master.Child(h)
	require.NoError(t, err)
	step2, err := step1.Child(h + 1)
	require.NoError(t, err)
	step3, err := step2.Child(h + 2)
	require.NoError(t, err)
	require.Equal(t, step3, viaPath)
}

func TestDerivePathRejectsNonHardenedSegment(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	master, err := slip10.NewMasterNode(seed)
	require.NoError(t, err)

	_, err = master.DerivePath(slip10.HardenedOffset, 1)
	require.Error(t, err)
}

func TestPublicKeyDerivation(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	master, err := slip10.NewMasterNode(seed)
	require.NoError(t, err)

	pub, err := master.PublicKey()
	require.NoError(t, err)
	require.Len(t, pub, 32)
}

func TestNewMasterNodeRejectsEmptySeed(t *testing.T) {
	_, err := slip10.NewMasterNode(nil)
	require.Error(t, err)
}
