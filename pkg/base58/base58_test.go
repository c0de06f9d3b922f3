package base58_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/web3kit-go/core/pkg/base58"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := []byte("hello web3")
	encoded := base58.Encode(data)
	decoded, err := base58.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}

func TestEncodeEmpty(t *testing.T) {
	require.Equal(t, "", base58.Encode(nil))
}

func TestCheckEncodeDecodeRoundTrip(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	encoded := base58.CheckEncode(data, 0x00)

	payload, version, err := base58.CheckDecode(encoded)
	require.NoError(t, err)
	require.Equal(t, data, payload)
	require.Equal(t, byte(0x00), version)
}

func TestCheckDecodeRejectsTamperedChecksum(t *testing.T) {
	encoded := base58.CheckEncode([]byte{0xde, 0xad, 0xbe, 0xef}, 0x05)
	tampered := encoded[:len(encoded)-1] + "z"
	_, _, err := base58.CheckDecode(tampered)
	require.Error(t, err)
}
