// Package addresslist reads the ordered list of addresses a batch run scans.
package addresslist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// ErrCheckpointAddressMissing is returned when a saved checkpoint names an address that is
// not in the list being resumed.
var ErrCheckpointAddressMissing = errors.New("checkpoint address not found in address list")

// Read loads the address file at path. See Parse.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open address list: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	lines, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read address list %s: %w", path, err)
	}
	return lines, nil
}

// Parse splits r into lines, keeping each line's terminator. CRLF is normalized to LF.
func Parse(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if strings.HasSuffix(line, "\r\n") {
				line = strings.TrimSuffix(line, "\r\n") + "\n"
			}
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ResumeIndex returns the index of the first line still to scan. An empty address starts
// from the beginning; otherwise scanning resumes after the line holding address.
func ResumeIndex(lines []string, address string) (int, error) {
	if address == "" {
		return 0, nil
	}
	for i, line := range lines {
		if strings.TrimSpace(line) == address {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrCheckpointAddressMissing, address)
}

// Validate reports whether address decodes as an address of the given network.
func Validate(address string, params *chaincfg.Params) error {
	decoded, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return fmt.Errorf("decode address %q: %w", address, err)
	}
	if !decoded.IsForNet(params) {
		return fmt.Errorf("address %q is not for network %s", address, params.Name)
	}
	return nil
}

// NetworkParams maps a network name to its chain parameters.
func NetworkParams(name string) (*chaincfg.Params, error) {
	switch name {
	case "", "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unknown network %q", name)
	}
}
