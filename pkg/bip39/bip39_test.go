package bip39_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/web3kit-go/core/pkg/bip39"
)

// Trezor BIP-39 test vector: all-zero 128-bit entropy.
func TestTrezorZeroEntropyVector(t *testing.T) {
	entropy, err := hex.DecodeString("00000000000000000000000000000000")
	require.NoError(t, err)
	entropy = entropy[:16]

	mnemonic, err := bip39.NewMnemonic(entropy)
	require.NoError(t, err)
	require.Equal(t,
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		mnemonic)

	require.True(t, bip39.IsValid(mnemonic))

	gotEntropy, err := bip39.MnemonicToEntropy(mnemonic)
	require.NoError(t, err)
	require.Equal(t, entropy, gotEntropy)

	seed, err := bip39.SeedFromMnemonic(mnemonic, "TREZOR")
	require.NoError(t, err)
	wantSeed, err := hex.DecodeString("c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531" +
		"f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04")
	require.NoError(t, err)
	require.Equal(t, wantSeed, seed)
}

func TestNewEntropyRoundTrip(t *testing.T) {
	for _, strength := range []bip39.Strength{
		bip39.Strength128, bip39.Strength160, bip39.Strength192, bip39.Strength224, bip39.Strength256,
	} {
		entropy, err := bip39.NewEntropy(strength)
		require.NoError(t, err)
		require.Equal(t, int(strength)/8, len(entropy))

		mnemonic, err := bip39.NewMnemonic(entropy)
		require.NoError(t, err)
		require.True(t, bip39.IsValid(mnemonic))

		gotEntropy, err := bip39.MnemonicToEntropy(mnemonic)
		require.NoError(t, err)
		require.Equal(t, entropy, gotEntropy)
	}
}

func TestMnemonicToEntropyRejectsBadChecksum(t *testing.T) {
	_, err := bip39.MnemonicToEntropy("abandon abandon abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon")
	require.Error(t, err)
}

func TestSeedFromMnemonicRejectsInvalidMnemonic(t *testing.T) {
	_, err := bip39.SeedFromMnemonic("not a valid mnemonic at all", "")
	require.Error(t, err)
}
