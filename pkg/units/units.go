// Package units scales between wei, gwei, and ether and parses/formats
// decimal token amounts with a caller-chosen decimal count.
package units

import (
	"math/big"
	"strings"

	"github.com/web3kit-go/core/pkg/errkind"
)

// Gwei and Ether express the wei-scaling factor for the two standard units;
// Wei itself is the base unit (scale 1).
var (
	Gwei  = new(big.Int).Exp(big.NewInt(10), big.NewInt(9), nil)
	Ether = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
)

// ParseUnits parses a decimal string (optionally with a fractional part) into
// its integer base-unit representation at the given decimals. Up to decimals
// fractional digits are accepted; any further digit is InvalidInput.
func ParseUnits(decimal string, decimals int) (*big.Int, error) {
	neg := false
	s := decimal
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || (hasFrac && !isDigits(frac)) {
		return nil, errkind.New(errkind.InvalidInput, "not a decimal number: "+decimal)
	}
	if len(frac) > decimals {
		return nil, errkind.New(errkind.InvalidInput, "too many fractional digits for decimals="+itoa(decimals))
	}
	frac = frac + strings.Repeat("0", decimals-len(frac))

	combined, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, errkind.New(errkind.InvalidInput, "not a decimal number: "+decimal)
	}
	if neg {
		combined.Neg(combined)
	}
	return combined, nil
}

// ParseEther parses a decimal ether string into wei (18 decimals).
func ParseEther(decimal string) (*big.Int, error) { return ParseUnits(decimal, 18) }

// ParseGwei parses a decimal gwei string into wei (9 decimals).
func ParseGwei(decimal string) (*big.Int, error) { return ParseUnits(decimal, 9) }

// FormatUnits renders wei as a decimal string with the given decimals,
// trimming trailing fractional zeros (but keeping at least "0" before the
// point).
func FormatUnits(wei *big.Int, decimals int) string {
	neg := wei.Sign() < 0
	abs := new(big.Int).Abs(wei)

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole := new(big.Int).Div(abs, scale)
	rem := new(big.Int).Mod(abs, scale)

	fracStr := rem.String()
	fracStr = strings.Repeat("0", decimals-len(fracStr)) + fracStr
	fracStr = strings.TrimRight(fracStr, "0")

	out := whole.String()
	if fracStr != "" {
		out += "." + fracStr
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatEther renders wei as a decimal ether string.
func FormatEther(wei *big.Int) string { return FormatUnits(wei, 18) }

// FormatGwei renders wei as a decimal gwei string.
func FormatGwei(wei *big.Int) string { return FormatUnits(wei, 9) }

func isDigits(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func itoa(n int) string {
	return big.NewInt(int64(n)).String()
}
