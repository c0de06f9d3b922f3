package walletops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/web3kit-go/core/pkg/bip32"
	"github.com/web3kit-go/core/internal/walletops"
)

func TestParseDerivationPathStandardEthereum(t *testing.T) {
	indexes, err := walletops.ParseDerivationPath("m/44'/60'/0'/0/0")
	require.NoError(t, err)
	require.Equal(t, []uint32{
		44 + bip32.HardenedOffset,
		60 + bip32.HardenedOffset,
		0 + bip32.HardenedOffset,
		0,
		0,
	}, indexes)
}

func TestParseDerivationPathAcceptsLowercaseH(t *testing.T) {
	indexes, err := walletops.ParseDerivationPath("m/44h/60h/0h/0/1")
	require.NoError(t, err)
	require.Equal(t, uint32(1), indexes[4])
	require.Equal(t, 60+bip32.HardenedOffset, int(indexes[1]))
}

func TestParseDerivationPathEmpty(t *testing.T) {
	indexes, err := walletops.ParseDerivationPath("m/")
	require.NoError(t, err)
	require.Nil(t, indexes)
}

func TestParseDerivationPathRejectsGarbage(t *testing.T) {
	_, err := walletops.ParseDerivationPath("m/notanumber")
	require.Error(t, err)
}
