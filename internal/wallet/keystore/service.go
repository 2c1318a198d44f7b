// Package keystore persists the wallet mnemonic encrypted at rest, as an
// Ethereum keystore v3 JSON file (scrypt + AES-128-CTR + Keccak-256 MAC).
package keystore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github/chapool/go-signer/internal/util"
)

const documentFileMode = 0o600

// Service is the persistent secret store for the mnemonic.
type Service interface {
	// Store encrypts the mnemonic under password and writes the keystore
	// file. Fails if a keystore already exists.
	Store(ctx context.Context, mnemonic string, password string) error

	// Retrieve reads the keystore file and decrypts the mnemonic.
	Retrieve(ctx context.Context, password string) (string, error)

	// Exists checks if a keystore file is present.
	Exists() (bool, error)
}

type service struct {
	path string
}

// NewService creates a new keystore Service backed by the file at path.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(path string) (Service, error) {
	if path == "" {
		return nil, errors.New("keystore path is required")
	}

	return &service{
		path: path,
	}, nil
}

// Store encrypts a mnemonic and writes it as a keystore v3 document.
func (s *service) Store(ctx context.Context, mnemonic string, password string) error {
	log := util.LogFromContext(ctx)

	exists, err := s.Exists()
	if err != nil {
		return errors.Wrap(err, "failed to check keystore existence")
	}
	if exists {
		return errors.New("keystore already exists")
	}

	document, err := encryptMnemonic(mnemonic, password)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encrypt mnemonic")
		return errors.Wrap(err, "failed to encrypt mnemonic")
	}

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal keystore document")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create keystore directory")
	}
	if err := os.WriteFile(s.path, data, documentFileMode); err != nil {
		log.Error().Err(err).Msg("Failed to write keystore file")
		return errors.Wrap(err, "failed to write keystore file")
	}

	return nil
}

// Retrieve decrypts the mnemonic from the keystore file.
func (s *service) Retrieve(ctx context.Context, password string) (string, error) {
	log := util.LogFromContext(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", errors.Wrap(err, "failed to read keystore file")
	}

	var document Document
	if err := json.Unmarshal(data, &document); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal keystore document")
	}

	mnemonic, err := decryptMnemonic(&document, password)
	if err != nil {
		log.Error().Err(err).Msg("Failed to decrypt mnemonic")
		return "", errors.Wrap(err, "failed to decrypt mnemonic")
	}

	return mnemonic, nil
}

// Exists checks if the keystore file is present.
func (s *service) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to stat keystore file")
	}

	return true, nil
}
