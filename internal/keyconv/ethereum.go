package keyconv

import (
	"encoding/hex"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/sha3"
)

// EthereumAddress returns the EIP-55 checksummed address of the key.
func EthereumAddress(raw string) (string, error) {
	key, err := ParsePrivateKey(raw)
	if err != nil {
		return "", err
	}
	pub := secp256k1.PrivKeyFromBytes(key).PubKey().SerializeUncompressed()

	digest := keccak256(pub[1:])
	return checksum(hex.EncodeToString(digest[len(digest)-20:])), nil
}

func checksum(addr string) string {
	hash := hex.EncodeToString(keccak256([]byte(addr)))
	var b strings.Builder
	b.Grow(len(addr) + 2)
	b.WriteString("0x")
	for i, c := range addr {
		if c >= 'a' && c <= 'f' && hash[i] >= '8' {
			c -= 'a' - 'A'
		}
		b.WriteRune(c)
	}
	return b.String()
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}
