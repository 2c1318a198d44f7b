package signer

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

const hashLength = 32

// SignMessage signs a UTF-8 message under the EIP-191 personal message
// convention: the prefix and message length are hashed in with the message
// so the signature cannot be replayed as a transaction.
func (s *Signer) SignMessage(message string) (string, error) {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return s.SignHash(crypto.Keccak256([]byte(prefixed)))
}

// SignHex decodes a hex payload (with or without 0x prefix), Keccak-256
// hashes it and signs the digest.
func (s *Signer) SignHex(payload string) (string, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(payload, "0x"))
	if err != nil {
		return "", errors.Wrap(err, "payload is not valid hex")
	}
	return s.SignHash(crypto.Keccak256(raw))
}

// SignHash signs an already-hashed 32-byte digest directly, without
// re-hashing. Signing uses a deterministic nonce (RFC 6979), so the output
// is fixed for a given key and digest.
//
// The result is a 0x-prefixed 130-hex-char signature r (32B) ‖ s (32B) ‖
// v (1B), with v as the raw recovery id (0 or 1).
func (s *Signer) SignHash(hash []byte) (string, error) {
	if len(hash) != hashLength {
		return "", errors.Errorf("hash must be %d bytes, got %d", hashLength, len(hash))
	}

	signature, err := crypto.Sign(hash, s.privateKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign hash")
	}

	return "0x" + hex.EncodeToString(signature), nil
}
