// Command web3cli is a small operator tool that exercises this module's
// cryptographic core: mnemonic generation, HD address derivation,
// personal-message signing, keystore encryption/decryption, and ABI selector
// lookup. EIP-712 typed-data signing has no subcommand here. It
// loads configuration, validates it, and sets up structured logging the
// same way a long-running service would, even though each subcommand here
// runs once and exits.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/web3kit-go/core/internal/config"
	"github.com/web3kit-go/core/internal/walletops"
	"github.com/web3kit-go/core/pkg/abi"
	"github.com/web3kit-go/core/pkg/bip39"
	"github.com/web3kit-go/core/pkg/kdf"
	"github.com/web3kit-go/core/pkg/keystore"
)

func main() {
	configPath := flag.String("config", "web3cli.toml", "path to configuration file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", slog.String("path", *configPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: web3cli <mnemonic|address|sign-message|keystore|abi> [flags]")
		os.Exit(2)
	}

	var runErr error
	switch args[0] {
	case "mnemonic":
		runErr = runMnemonic(args[1:])
	case "address":
		runErr = runAddress(cfg, args[1:])
	case "sign-message":
		runErr = runSignMessage(cfg, args[1:])
	case "keystore":
		runErr = runKeystore(cfg, args[1:])
	case "abi":
		runErr = runABI(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", args[0])
		os.Exit(2)
	}

	if runErr != nil {
		logger.Error("command failed", slog.String("subcommand", args[0]), slog.String("error", runErr.Error()))
		os.Exit(1)
	}
}

func runMnemonic(args []string) error {
	fs := flag.NewFlagSet("mnemonic", flag.ExitOnError)
	strength := fs.Int("strength", 128, "entropy strength in bits (128, 160, 192, 224, 256)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	entropy, err := bip39.NewEntropy(bip39.Strength(*strength))
	if err != nil {
		return err
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return err
	}
	fmt.Println(mnemonic)
	return nil
}

func runAddress(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("address", flag.ExitOnError)
	mnemonic := fs.String("mnemonic", "", "BIP-39 mnemonic")
	passphrase := fs.String("passphrase", "", "BIP-39 passphrase")
	path := fs.String("path", cfg.Derivation.Path, "BIP-32 derivation path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mnemonic == "" {
		return fmt.Errorf("address: --mnemonic is required")
	}

	w, err := walletops.FromMnemonic(*mnemonic, *passphrase, *path)
	if err != nil {
		return err
	}
	fmt.Println(w.Address.ToChecksum())
	return nil
}

func runSignMessage(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("sign-message", flag.ExitOnError)
	mnemonic := fs.String("mnemonic", "", "BIP-39 mnemonic")
	passphrase := fs.String("passphrase", "", "BIP-39 passphrase")
	path := fs.String("path", cfg.Derivation.Path, "BIP-32 derivation path")
	message := fs.String("message", "", "message to sign")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mnemonic == "" {
		return fmt.Errorf("sign-message: --mnemonic is required")
	}

	w, err := walletops.FromMnemonic(*mnemonic, *passphrase, *path)
	if err != nil {
		return err
	}
	sig, err := w.SignPersonalMessage([]byte(*message))
	if err != nil {
		return err
	}
	fmt.Println("0x" + hex.EncodeToString(sig))
	return nil
}

func runKeystore(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("keystore: expected \"encrypt\" or \"decrypt\"")
	}
	switch args[0] {
	case "encrypt":
		return runKeystoreEncrypt(cfg, args[1:])
	case "decrypt":
		return runKeystoreDecrypt(args[1:])
	default:
		return fmt.Errorf("keystore: unknown action %q", args[0])
	}
}

func runKeystoreEncrypt(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("keystore encrypt", flag.ExitOnError)
	mnemonic := fs.String("mnemonic", "", "BIP-39 mnemonic")
	passphrase := fs.String("passphrase", "", "BIP-39 passphrase")
	path := fs.String("path", cfg.Derivation.Path, "BIP-32 derivation path")
	password := fs.String("password", "", "keystore encryption password")
	out := fs.String("out", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mnemonic == "" || *password == "" {
		return fmt.Errorf("keystore encrypt: --mnemonic and --password are required")
	}

	w, err := walletops.FromMnemonic(*mnemonic, *passphrase, *path)
	if err != nil {
		return err
	}
	params := kdf.ScryptParams{N: cfg.KDF.N, R: cfg.KDF.R, P: cfg.KDF.P, DKLen: cfg.KDF.DKLen}
	v3, err := w.EncryptToKeystore(*password, params)
	if err != nil {
		return err
	}
	raw, err := keystore.MarshalJSON(v3)
	if err != nil {
		return err
	}
	if *out == "" {
		fmt.Println(string(raw))
		return nil
	}
	return os.WriteFile(*out, raw, 0o600)
}

func runKeystoreDecrypt(args []string) error {
	fs := flag.NewFlagSet("keystore decrypt", flag.ExitOnError)
	file := fs.String("file", "", "keystore JSON file")
	password := fs.String("password", "", "keystore decryption password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" || *password == "" {
		return fmt.Errorf("keystore decrypt: --file and --password are required")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	v3, err := keystore.UnmarshalJSON(raw)
	if err != nil {
		return err
	}
	w, err := walletops.FromKeystore(v3, *password)
	if err != nil {
		return err
	}
	fmt.Println(w.Address.ToChecksum())
	return nil
}

func runABI(args []string) error {
	if len(args) == 0 || args[0] != "selector" {
		return fmt.Errorf("abi: expected \"selector\"")
	}
	fs := flag.NewFlagSet("abi selector", flag.ExitOnError)
	signature := fs.String("sig", "", "canonical function signature, e.g. transfer(address,uint256)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *signature == "" {
		return fmt.Errorf("abi selector: --sig is required")
	}
	sel := abi.Selector(*signature)

	out, err := json.Marshal(map[string]string{
		"signature": *signature,
		"selector":  "0x" + hex.EncodeToString(sel[:]),
	})
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
