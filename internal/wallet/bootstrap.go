package wallet

import (
	"context"

	"github.com/pkg/errors"

	"github/chapool/go-signer/internal/config"
	"github/chapool/go-signer/internal/wallet/identity"
	"github/chapool/go-signer/internal/wallet/keystore"
)

const minPasswordLength = 8

// BootstrapFromConfig wires the keystore service and loads the process
// identity. The keystore password comes from the configuration; when unset,
// the user is prompted (with confirmation if a new keystore is being
// created).
func BootstrapFromConfig(ctx context.Context, cfg config.Service) (*identity.Holder, error) {
	store, err := keystore.NewService(cfg.KeystorePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create keystore service")
	}

	exists, err := store.Exists()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check keystore existence")
	}

	password, err := ResolvePassword(cfg, exists)
	if err != nil {
		return nil, err
	}

	return InitializeIdentity(ctx, store, password)
}

// ResolvePassword resolves the keystore password from the configuration,
// prompting when none is set. Passwords for a new keystore must meet the
// minimum length regardless of where they come from; the confirmation prompt
// only applies to interactive input.
func ResolvePassword(cfg config.Service, keystoreExists bool) (string, error) {
	if cfg.KeystorePassword != "" {
		if !keystoreExists && len(cfg.KeystorePassword) < minPasswordLength {
			return "", errors.Errorf("password must be at least %d characters", minPasswordLength)
		}
		return cfg.KeystorePassword, nil
	}

	if keystoreExists {
		return PromptPassword("Enter keystore password: ")
	}

	password, err := PromptPassword("Enter password for new keystore (min 8 characters): ")
	if err != nil {
		return "", err
	}
	if len(password) < minPasswordLength {
		return "", errors.Errorf("password must be at least %d characters", minPasswordLength)
	}

	passwordConfirm, err := PromptPassword("Confirm password: ")
	if err != nil {
		return "", err
	}
	if password != passwordConfirm {
		return "", errors.New("passwords do not match")
	}

	return password, nil
}
