// Package config defines the top-level configuration for the web3cli
// command and provides validation helpers.
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration structure. Fields are populated from a
// TOML file and then optionally overridden by WEB3CLI_* environment
// variables.
type Config struct {
	Chain      ChainConfig      `toml:"chain"`
	Derivation DerivationConfig `toml:"derivation"`
	KDF        KDFConfig        `toml:"kdf"`
	Keystore   KeystoreConfig   `toml:"keystore"`
	Wallet     WalletConfig     `toml:"wallet"`
	LogLevel   string           `toml:"log_level"`
}

// ChainConfig selects the default EVM chain new transactions and EIP-712
// domains target.
type ChainConfig struct {
	ID int `toml:"id"`
}

// DerivationConfig holds the default BIP-32/SLIP-10 derivation path used
// when none is given on the command line.
type DerivationConfig struct {
	Path string `toml:"path"`
}

// KDFConfig holds the default scrypt parameters for keystore encryption.
type KDFConfig struct {
	N     int `toml:"n"`
	R     int `toml:"r"`
	P     int `toml:"p"`
	DKLen int `toml:"dklen"`
}

// KeystoreConfig holds the on-disk layout for v3 keystore files.
type KeystoreConfig struct {
	Dir string `toml:"dir"`
}

// WalletConfig holds operator-supplied wallet secrets. These are normally
// set via environment variable, not committed to the TOML file.
type WalletConfig struct {
	KeyPassword string `toml:"key_password"`
}

// Defaults returns a Config populated with reasonable default values.
func Defaults() Config {
	return Config{
		Chain: ChainConfig{ID: 1},
		Derivation: DerivationConfig{
			Path: "m/44'/60'/0'/0/0",
		},
		KDF: KDFConfig{
			N:     262144,
			R:     8,
			P:     1,
			DKLen: 32,
		},
		Keystore: KeystoreConfig{
			Dir: "./keystore",
		},
		LogLevel: "info",
	}
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks Config for obviously invalid or missing values and
// returns a combined error describing every problem found.
func (c *Config) Validate() error {
	var errs []string

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}
	if c.Chain.ID <= 0 {
		errs = append(errs, "chain: id must be positive")
	}
	if strings.TrimSpace(c.Derivation.Path) == "" {
		errs = append(errs, "derivation: path must not be empty")
	}
	if c.KDF.N <= 1 || c.KDF.N&(c.KDF.N-1) != 0 {
		errs = append(errs, "kdf: n must be a power of two greater than 1")
	}
	if c.KDF.R <= 0 {
		errs = append(errs, "kdf: r must be > 0")
	}
	if c.KDF.P <= 0 {
		errs = append(errs, "kdf: p must be > 0")
	}
	if c.KDF.DKLen < 16 {
		errs = append(errs, "kdf: dklen must be >= 16")
	}
	if strings.TrimSpace(c.Keystore.Dir) == "" {
		errs = append(errs, "keystore: dir must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
