package walletops

import (
	"strconv"
	"strings"

	"github.com/web3kit-go/core/pkg/bip32"
	"github.com/web3kit-go/core/pkg/errkind"
)

// ParseDerivationPath parses a BIP-32 style path such as "m/44'/60'/0'/0/0"
// into the sequence of child indexes bip32.Key.DerivePath expects, with the
// trailing ' (or h) marker adding bip32.HardenedOffset.
func ParseDerivationPath(path string) ([]uint32, error) {
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "m/")
	path = strings.TrimPrefix(path, "M/")
	if path == "" {
		return nil, nil
	}

	segments := strings.Split(path, "/")
	indexes := make([]uint32, 0, len(segments))
	for _, seg := range segments {
		hardened := false
		if strings.HasSuffix(seg, "'") || strings.HasSuffix(seg, "h") || strings.HasSuffix(seg, "H") {
			hardened = true
			seg = seg[:len(seg)-1]
		}
		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			return nil, errkind.Wrap(errkind.InvalidDerivation, "invalid derivation path segment \""+seg+"\"", err)
		}
		idx := uint32(n)
		if hardened {
			idx += bip32.HardenedOffset
		}
		indexes = append(indexes, idx)
	}
	return indexes, nil
}
