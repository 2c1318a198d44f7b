// Package derive produces the module's two fixed child keys from a BIP39
// seed: the identity key used for authentication signing and the wallet key
// at the standard BIP44 Ethereum path.
package derive

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
)

// The two derivation paths are fixed; no runtime path parameter is accepted
// (single address per purpose).
const (
	identityPath = "m/0'/1/0"
	walletPath   = "m/44'/60'/0'/0/0"
)

// IdentityKey derives the 32-byte identity private key from seed.
func IdentityKey(seed []byte) ([]byte, error) {
	return deriveKey(seed, identityPath)
}

// WalletKey derives the 32-byte Ethereum wallet private key from seed.
func WalletKey(seed []byte) ([]byte, error) {
	return deriveKey(seed, walletPath)
}

// deriveKey walks the path step by step from the master key. Hardened steps
// use the parent private key, normal steps the parent public key, per BIP32.
func deriveKey(seed []byte, path string) ([]byte, error) {
	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	indices, err := parsePath(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse derivation path")
	}

	key := masterKey
	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
	}

	return key.Key, nil
}

// parsePath parses a derivation path string into child indices.
// Example: "m/44'/60'/0'/0/0" -> [0x8000002c, 0x8000003c, 0x80000000, 0, 0]
func parsePath(path string) ([]uint32, error) {
	if !strings.HasPrefix(path, "m/") {
		return nil, errors.Errorf("invalid derivation path: %s", path)
	}

	parts := strings.Split(path[2:], "/")
	indices := make([]uint32, 0, len(parts))
	for _, part := range parts {
		hardened := strings.HasSuffix(part, "'")
		part = strings.TrimSuffix(part, "'")

		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid path segment %q", part)
		}
		if index >= uint64(bip32.FirstHardenedChild) {
			return nil, errors.Errorf("path index %d out of range", index)
		}

		child := uint32(index)
		if hardened {
			child += bip32.FirstHardenedChild
		}
		indices = append(indices, child)
	}

	return indices, nil
}
