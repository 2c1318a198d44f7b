// Package signer wraps a single secp256k1 private key and exposes Ethereum
// style signing: EIP-191 personal messages, hex payloads and raw digests.
package signer

import (
	"crypto/ecdsa"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// Signer holds the only reference to its private key. The key is never
// serialized or logged.
type Signer struct {
	privateKey *ecdsa.PrivateKey
}

// New creates a Signer from a 32-byte secp256k1 private key.
func New(privateKey []byte) (*Signer, error) {
	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert private key to ECDSA")
	}

	return &Signer{privateKey: key}, nil
}

// Address returns the EIP-55 checksummed hex address: the last 20 bytes of
// the Keccak-256 hash of the uncompressed public key.
func (s *Signer) Address() string {
	return crypto.PubkeyToAddress(s.privateKey.PublicKey).Hex()
}

// PublicKeyBytes returns the uncompressed public key (65 bytes, 0x04 prefix).
func (s *Signer) PublicKeyBytes() []byte {
	return crypto.FromECDSAPub(&s.privateKey.PublicKey)
}

// Keccak256Hex returns the Keccak-256 digest of data as a 0x-prefixed hex
// string, for callers that need just the digest.
func Keccak256Hex(data []byte) string {
	return "0x" + hex.EncodeToString(crypto.Keccak256(data))
}
