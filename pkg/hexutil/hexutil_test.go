package hexutil_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/web3kit-go/core/pkg/errkind"
	"github.com/web3kit-go/core/pkg/hexutil"
)

func TestRoundTrip(t *testing.T) {
	for _, b := range [][]byte{{}, {0x00}, {0xde, 0xad, 0xbe, 0xef}} {
		s := hexutil.Encode(b, true)
		got, err := hexutil.Decode(s)
		require.NoError(t, err)
		require.Equal(t, b, got)
	}
}

func TestDecodeBarePrefix(t *testing.T) {
	b1, err := hexutil.Decode("0xAB")
	require.NoError(t, err)
	b2, err := hexutil.Decode("AB")
	require.NoError(t, err)
	require.Equal(t, b1, b2)
	require.Equal(t, []byte{0xab}, b1)
}

func TestDecodeErrors(t *testing.T) {
	_, err := hexutil.Decode("0xabc")
	require.True(t, errkind.Is(err, errkind.InvalidInput))

	_, err = hexutil.Decode("0xzz")
	require.True(t, errkind.Is(err, errkind.InvalidInput))
}

func TestEncodeBig(t *testing.T) {
	s, err := hexutil.EncodeBig(big.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, "0x0", s)

	s, err = hexutil.EncodeBig(big.NewInt(255))
	require.NoError(t, err)
	require.Equal(t, "0xff", s)

	_, err = hexutil.EncodeBig(big.NewInt(-1))
	require.True(t, errkind.Is(err, errkind.InvalidInput))
}

func TestEncodeUint64(t *testing.T) {
	require.Equal(t, "0x0", hexutil.EncodeUint64(0))
	require.Equal(t, "0x10", hexutil.EncodeUint64(16))
}
