package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies WEB3CLI_* environment variable overrides, and
// returns the final Config. The returned Config has NOT been validated; the
// caller should invoke Config.Validate() after Load.
//
// A missing config file is not an error: Load falls back to Defaults() plus
// any environment overrides, so the CLI works with zero setup.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return nil, err
			}
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known WEB3CLI_* environment variables and
// overwrites the corresponding Config fields when a variable is set (i.e.
// not empty). This lets operators inject secrets at invocation time without
// touching the TOML file.
func applyEnvOverrides(cfg *Config) {
	setInt(&cfg.Chain.ID, "WEB3CLI_CHAIN_ID")
	setStr(&cfg.Derivation.Path, "WEB3CLI_DERIVATION_PATH")
	setInt(&cfg.KDF.N, "WEB3CLI_KDF_N")
	setInt(&cfg.KDF.R, "WEB3CLI_KDF_R")
	setInt(&cfg.KDF.P, "WEB3CLI_KDF_P")
	setInt(&cfg.KDF.DKLen, "WEB3CLI_KDF_DKLEN")
	setStr(&cfg.Keystore.Dir, "WEB3CLI_KEYSTORE_DIR")
	setStr(&cfg.Wallet.KeyPassword, "WEB3CLI_WALLET_KEY_PASSWORD")
	setStr(&cfg.LogLevel, "WEB3CLI_LOG_LEVEL")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
