// Package keyconv derives Bitcoin and Ethereum formats from a raw private key.
package keyconv

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// KeyLength is the size of a raw secp256k1 private key in bytes.
const KeyLength = 32

var (
	// ErrInvalidKeyLength is returned when the decoded key is not 32 bytes.
	ErrInvalidKeyLength = errors.New("private key must be 32 bytes")
	// ErrKeyOutOfRange is returned for zero keys and keys not below the curve order.
	ErrKeyOutOfRange = errors.New("private key out of range")
)

// BitcoinKeys holds every Bitcoin rendering of one private key.
type BitcoinKeys struct {
	PrivateKeyHex         string
	WIFUncompressed       string
	WIFCompressed         string
	PublicKeyUncompressed string
	PublicKeyCompressed   string
	AddressUncompressed   string
	AddressCompressed     string
	AddressSegWit         string
}

// ParsePrivateKey decodes a hex private key with an optional 0x prefix.
func ParsePrivateKey(raw string) ([]byte, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(key) != KeyLength {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(key))
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(key); overflow || scalar.IsZero() {
		return nil, ErrKeyOutOfRange
	}
	return key, nil
}

// Bitcoin renders the key as WIF, public keys and P2PKH/P2WPKH addresses for params.
func Bitcoin(raw string, params *chaincfg.Params) (BitcoinKeys, error) {
	if params == nil {
		return BitcoinKeys{}, errors.New("network params are required")
	}
	key, err := ParsePrivateKey(raw)
	if err != nil {
		return BitcoinKeys{}, err
	}
	priv, pub := btcec.PrivKeyFromBytes(key)

	wifU, err := btcutil.NewWIF(priv, params, false)
	if err != nil {
		return BitcoinKeys{}, fmt.Errorf("wif uncompressed: %w", err)
	}
	wifC, err := btcutil.NewWIF(priv, params, true)
	if err != nil {
		return BitcoinKeys{}, fmt.Errorf("wif compressed: %w", err)
	}

	uncompressed := pub.SerializeUncompressed()
	compressed := pub.SerializeCompressed()

	addrU, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(uncompressed), params)
	if err != nil {
		return BitcoinKeys{}, fmt.Errorf("address uncompressed: %w", err)
	}
	addrC, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(compressed), params)
	if err != nil {
		return BitcoinKeys{}, fmt.Errorf("address compressed: %w", err)
	}
	addrW, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(compressed), params)
	if err != nil {
		return BitcoinKeys{}, fmt.Errorf("address segwit: %w", err)
	}

	return BitcoinKeys{
		PrivateKeyHex:         hex.EncodeToString(key),
		WIFUncompressed:       wifU.String(),
		WIFCompressed:         wifC.String(),
		PublicKeyUncompressed: hex.EncodeToString(uncompressed),
		PublicKeyCompressed:   hex.EncodeToString(compressed),
		AddressUncompressed:   addrU.EncodeAddress(),
		AddressCompressed:     addrC.EncodeAddress(),
		AddressSegWit:         addrW.EncodeAddress(),
	}, nil
}
