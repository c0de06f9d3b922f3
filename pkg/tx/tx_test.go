package tx_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/web3kit-go/core/pkg/addr"
	"github.com/web3kit-go/core/pkg/tx"
)

func sampleTo() *addr.Address {
	a, _ := addr.FromHex("0x3535353535353535353535353535353535353535"[:42])
	return &a
}

// Classic EIP-155 example from the EIP-155 specification text itself.
func TestLegacyEIP155SigningHashKnownVector(t *testing.T) {
	to, err := addr.FromHex("0x3535353535353535353535353535353535353535"[:42])
	require.NoError(t, err)

	txn := tx.Transaction{
		Type:     tx.Legacy,
		Nonce:    9,
		GasPrice: big.NewInt(20_000_000_000),
		GasLimit: 21000,
		To:       &to,
		Value:    weiFromEther(1),
		ChainID:  big.NewInt(1),
	}

	signingHash, err := txn.SigningHash()
	require.NoError(t, err)
	require.Equal(t, "daf5a779ae972f972197303d7b574746c7ef83eadac0f2791ad23db92e4c8e2", hex.EncodeToString(signingHash))
}

func weiFromEther(n int64) *big.Int {
	wei := new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
	return wei
}

func TestLegacySignedEncodeRoundTripsThroughHash(t *testing.T) {
	to, err := addr.FromHex("0x3535353535353535353535353535353535353535"[:42])
	require.NoError(t, err)

	txn := tx.Transaction{
		Type:     tx.Legacy,
		Nonce:    0,
		GasPrice: big.NewInt(1),
		GasLimit: 21000,
		To:       &to,
		Value:    big.NewInt(100),
		ChainID:  big.NewInt(1),
		Signature: &tx.Signature{
			V: big.NewInt(37),
			R: big.NewInt(1),
			S: big.NewInt(2),
		},
	}

	encoded, err := txn.Encode()
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	h, err := txn.Hash()
	require.NoError(t, err)
	require.Len(t, h, 32)
}

func TestTypedTransactionEnvelopePrefix(t *testing.T) {
	to, err := addr.FromHex("0x3535353535353535353535353535353535353535"[:42])
	require.NoError(t, err)

	txn := tx.Transaction{
		Type:      tx.DynamicFee1559,
		ChainID:   big.NewInt(1),
		Nonce:     0,
		GasTipCap: big.NewInt(1_000_000_000),
		GasFeeCap: big.NewInt(2_000_000_000),
		GasLimit:  21000,
		To:        &to,
		Value:     big.NewInt(0),
	}

	payload, err := txn.SigningPayload()
	require.NoError(t, err)
	require.Equal(t, byte(tx.DynamicFee1559), payload[0])
}

func TestAccessListAndBlobEnvelopesProduceDistinctHashes(t *testing.T) {
	to, err := addr.FromHex("0x3535353535353535353535353535353535353535"[:42])
	require.NoError(t, err)

	base := tx.Transaction{
		ChainID:   big.NewInt(1),
		Nonce:     1,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		GasLimit:  21000,
		To:        &to,
		Value:     big.NewInt(0),
	}

	accessListTx := base
	accessListTx.Type = tx.AccessList2930
	accessListTx.GasPrice = big.NewInt(2)

	blobTx := base
	blobTx.Type = tx.Blob4844
	blobTx.MaxFeePerBlobGas = big.NewInt(1)
	blobTx.BlobVersionedHashes = [][32]byte{{0x01}}

	h1, err := accessListTx.SigningHash()
	require.NoError(t, err)
	h2, err := blobTx.SigningHash()
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestSetCode7702IncludesAuthorizationList(t *testing.T) {
	to, err := addr.FromHex("0x3535353535353535353535353535353535353535"[:42])
	require.NoError(t, err)
	delegate, err := addr.FromHex("0x1111111111111111111111111111111111111111"[:42])
	require.NoError(t, err)

	withAuth := tx.Transaction{
		Type:      tx.SetCode7702,
		ChainID:   big.NewInt(1),
		Nonce:     0,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		GasLimit:  21000,
		To:        &to,
		Value:     big.NewInt(0),
		AuthorizationList: []tx.Authorization{
			{ChainID: big.NewInt(1), Address: delegate, Nonce: 0, YParity: 0, R: big.NewInt(1), S: big.NewInt(1)},
		},
	}
	withoutAuth := withAuth
	withoutAuth.AuthorizationList = nil

	h1, err := withAuth.SigningHash()
	require.NoError(t, err)
	h2, err := withoutAuth.SigningHash()
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestAuthorizationSigningHashIsDeterministic(t *testing.T) {
	delegate, err := addr.FromHex("0x1111111111111111111111111111111111111111"[:42])
	require.NoError(t, err)

	h1 := tx.AuthorizationSigningHash(big.NewInt(1), delegate, 0)
	h2 := tx.AuthorizationSigningHash(big.NewInt(1), delegate, 0)
	require.Len(t, h1, 32)
	require.Equal(t, h1, h2)
}

func TestAuthorizationSigningHashChangesWithNonceAndChainID(t *testing.T) {
	delegate, err := addr.FromHex("0x1111111111111111111111111111111111111111"[:42])
	require.NoError(t, err)

	base := tx.AuthorizationSigningHash(big.NewInt(1), delegate, 0)
	bumpedNonce := tx.AuthorizationSigningHash(big.NewInt(1), delegate, 1)
	bumpedChain := tx.AuthorizationSigningHash(big.NewInt(2), delegate, 0)

	require.NotEqual(t, base, bumpedNonce)
	require.NotEqual(t, base, bumpedChain)
}

func TestBlobTransactionRequiresRecipient(t *testing.T) {
	txn := tx.Transaction{
		Type:             tx.Blob4844,
		ChainID:          big.NewInt(1),
		GasTipCap:        big.NewInt(1),
		GasFeeCap:        big.NewInt(2),
		GasLimit:         21000,
		Value:            big.NewInt(0),
		MaxFeePerBlobGas: big.NewInt(1),
	}
	_, err := txn.SigningHash()
	require.Error(t, err)
}
