// Package wallet wires the mnemonic engine, key derivation and keystore into
// the process identity at startup.
package wallet

import (
	"context"
	"fmt"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github/chapool/go-signer/internal/wallet/identity"
)

// SecretStore is the narrow persistence surface the identity bootstrap
// needs. The keystore service implements it.
type SecretStore interface {
	Store(ctx context.Context, mnemonic string, password string) error
	Retrieve(ctx context.Context, password string) (string, error)
	Exists() (bool, error)
}

// InitializeIdentity loads the process identity at startup:
// 1. If a keystore exists, decrypt it and restore the identity.
// 2. Otherwise generate a fresh identity and persist its mnemonic.
// Restoring never re-persists; a freshly generated identity is persisted
// exactly once, before the holder is populated.
func InitializeIdentity(ctx context.Context, store SecretStore, password string) (*identity.Holder, error) {
	log := log.With().Str("component", "wallet_init").Logger()
	holder := identity.NewHolder()

	exists, err := store.Exists()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check keystore existence")
	}

	if exists {
		words, err := store.Retrieve(ctx, password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decrypt keystore (invalid password?)")
		}

		id, err := identity.FromWords(words)
		if err != nil {
			return nil, errors.Wrap(err, "persisted mnemonic is invalid")
		}

		if err := holder.Set(id); err != nil {
			return nil, err
		}

		log.Info().Str("address", id.WalletAddress()).Msg("Identity restored from keystore")
		return holder, nil
	}

	log.Info().Msg("Keystore not found. Generating new identity...")

	id, err := identity.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate identity")
	}

	if err := store.Store(ctx, id.Words(), password); err != nil {
		return nil, errors.Wrap(err, "failed to persist mnemonic")
	}

	if err := holder.Set(id); err != nil {
		return nil, err
	}

	log.Info().Str("address", id.WalletAddress()).Msg("Identity generated and persisted")
	return holder, nil
}

// ImportIdentity creates the process identity from explicit mnemonic words
// and persists them, once. Fails if a keystore already exists.
func ImportIdentity(ctx context.Context, store SecretStore, password string, words string) (*identity.Holder, error) {
	log := log.With().Str("component", "wallet_init").Logger()
	holder := identity.NewHolder()

	exists, err := store.Exists()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check keystore existence")
	}
	if exists {
		return nil, errors.New("keystore already exists")
	}

	id, err := identity.FromWords(words)
	if err != nil {
		return nil, err
	}

	if err := store.Store(ctx, id.Words(), password); err != nil {
		return nil, errors.Wrap(err, "failed to persist mnemonic")
	}

	if err := holder.Set(id); err != nil {
		return nil, err
	}

	log.Info().Str("address", id.WalletAddress()).Msg("Identity imported and persisted")
	return holder, nil
}

// PromptPassword prompts for password input on the terminal (hides input).
//
//nolint:forbidigo // Password input requires direct terminal I/O
func PromptPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	passwordBytes, err := term.ReadPassword(syscall.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password from terminal")
	}

	fmt.Println() // New line after password input

	return string(passwordBytes), nil
}
