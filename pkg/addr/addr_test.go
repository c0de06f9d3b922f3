package addr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/web3kit-go/core/pkg/addr"
	"github.com/web3kit-go/core/pkg/errkind"
)

func TestEIP55ChecksumVector(t *testing.T) {
	a, err := addr.FromHex("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
	require.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", a.ToChecksum())
}

func TestChecksumIdempotentAndSelfValid(t *testing.T) {
	a, err := addr.FromHex("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
	c1 := a.ToChecksum()
	a2, err := addr.FromHex(c1)
	require.NoError(t, err)
	require.Equal(t, c1, a2.ToChecksum())
	require.True(t, a.IsValidChecksum())
	require.True(t, addr.VerifyChecksum(c1))
}

func TestFromHexAcceptsAnyCaseLoose(t *testing.T) {
	_, err := addr.FromHex("0X5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED")
	require.NoError(t, err)
}

func TestFromHexStrictRejectsBadChecksum(t *testing.T) {
	_, err := addr.FromHexStrict("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD") // last char flipped case
	require.True(t, errkind.Is(err, errkind.InvalidChecksum))
}

func TestFromHexStrictAcceptsAllLowerAndUpper(t *testing.T) {
	_, err := addr.FromHexStrict("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
	_, err = addr.FromHexStrict("0X5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED")
	require.NoError(t, err)
}

func TestInvalidLength(t *testing.T) {
	_, err := addr.FromHex("0x1234")
	require.True(t, errkind.Is(err, errkind.InvalidInput))
}

func TestZeroAndAllFF(t *testing.T) {
	z, err := addr.FromHex("0x0000000000000000000000000000000000000000")
	require.NoError(t, err)
	require.True(t, z.IsZero())

	ff, err := addr.FromHex("0xffffffffffffffffffffffffffffffffffffffff")
	require.NoError(t, err)
	require.False(t, ff.IsZero())
}
