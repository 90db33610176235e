package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nonceaudit/internal/addresslist"
	"github.com/goodnatureofminers/nonceaudit/internal/keyconv"
	"github.com/goodnatureofminers/nonceaudit/internal/prompt"
)

type config struct {
	Key     string `long:"key" description:"Raw private key in hex; prompted for when empty"`
	Network string `long:"network" default:"mainnet" description:"Bitcoin network (mainnet|testnet3|regtest|signet)"`
}

var (
	header = color.New(color.FgCyan, color.Bold).SprintFunc()
	label  = color.New(color.FgGreen).SprintFunc()
	failed = color.New(color.FgRed).SprintFunc()
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	params, err := addresslist.NetworkParams(cfg.Network)
	if err != nil {
		logger.Fatal("invalid network", zap.Error(err))
	}

	key := cfg.Key
	if key == "" {
		key, err = prompt.New(os.Stdin, os.Stdout).Ask("Enter your raw private key (hex format): ")
		if err != nil {
			logger.Fatal("failed to read private key", zap.Error(err))
		}
	}

	out := color.Output
	fmt.Fprintln(out, header("=== Bitcoin Key Conversion ==="))
	if keys, err := keyconv.Bitcoin(key, params); err != nil {
		fmt.Fprintln(out, failed("Error:"), err)
	} else {
		printField(out, "Real Private Key (Hex)", keys.PrivateKeyHex)
		printField(out, "WIF Uncompressed", keys.WIFUncompressed)
		printField(out, "WIF Compressed", keys.WIFCompressed)
		printField(out, "Public Key Uncompressed", keys.PublicKeyUncompressed)
		printField(out, "Public Key Compressed", keys.PublicKeyCompressed)
		printField(out, "Bitcoin Address Uncompressed", keys.AddressUncompressed)
		printField(out, "Bitcoin Address Compressed", keys.AddressCompressed)
		printField(out, "Bitcoin Address SegWit", keys.AddressSegWit)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, header("=== Ethereum Key Conversion ==="))
	if addr, err := keyconv.EthereumAddress(key); err != nil {
		fmt.Fprintln(out, failed("Error:"), err)
	} else {
		printField(out, "Ethereum Address", addr)
	}
}

func printField(w io.Writer, name, value string) {
	fmt.Fprintf(w, "%s: %s\n", label(name), value)
}
