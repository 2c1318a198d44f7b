package wallet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-signer/internal/wallet"
	"github/chapool/go-signer/internal/wallet/mnemonic"
)

const zeroEntropyWords = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// memoryStore is an in-memory SecretStore counting its writes.
type memoryStore struct {
	mnemonic    string
	stored      bool
	storeCalls  int
	retrieveErr error
}

func (m *memoryStore) Store(_ context.Context, mnemonic string, _ string) error {
	m.storeCalls++
	m.mnemonic = mnemonic
	m.stored = true
	return nil
}

func (m *memoryStore) Retrieve(_ context.Context, _ string) (string, error) {
	if m.retrieveErr != nil {
		return "", m.retrieveErr
	}
	return m.mnemonic, nil
}

func (m *memoryStore) Exists() (bool, error) {
	return m.stored, nil
}

func TestInitializeIdentityGeneratesAndPersistsOnce(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}

	holder, err := wallet.InitializeIdentity(ctx, store, "password123")
	require.NoError(t, err)

	id := holder.MustCurrent()
	assert.Equal(t, 1, store.storeCalls)
	assert.Equal(t, id.Words(), store.mnemonic)
	assert.True(t, mnemonic.Validate(store.mnemonic))
}

func TestInitializeIdentityRestoresWithoutPersisting(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{mnemonic: zeroEntropyWords, stored: true}

	holder, err := wallet.InitializeIdentity(ctx, store, "password123")
	require.NoError(t, err)

	// Restoring must not write the keystore again
	assert.Equal(t, 0, store.storeCalls)
	assert.Equal(t, zeroEntropyWords, holder.MustCurrent().Words())
}

func TestInitializeIdentityIsStableAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}

	first, err := wallet.InitializeIdentity(ctx, store, "password123")
	require.NoError(t, err)

	second, err := wallet.InitializeIdentity(ctx, store, "password123")
	require.NoError(t, err)

	assert.Equal(t, 1, store.storeCalls)
	assert.Equal(t,
		first.MustCurrent().WalletAddress(),
		second.MustCurrent().WalletAddress(),
	)
}

func TestInitializeIdentityRejectsCorruptMnemonic(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{mnemonic: "corrupted word salad", stored: true}

	_, err := wallet.InitializeIdentity(ctx, store, "password123")
	assert.Error(t, err)
}

func TestImportIdentityPersistsOnce(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}

	holder, err := wallet.ImportIdentity(ctx, store, "password123", zeroEntropyWords)
	require.NoError(t, err)

	assert.Equal(t, 1, store.storeCalls)
	assert.Equal(t, zeroEntropyWords, holder.MustCurrent().Words())
}

func TestImportIdentityRefusesExistingKeystore(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{mnemonic: zeroEntropyWords, stored: true}

	_, err := wallet.ImportIdentity(ctx, store, "password123", zeroEntropyWords)
	assert.Error(t, err)
	assert.Equal(t, 0, store.storeCalls)
}

func TestImportIdentityRejectsInvalidWords(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}

	_, err := wallet.ImportIdentity(ctx, store, "password123", "twelve bogus words that will never validate as a bip39 mnemonic ok")
	require.Error(t, err)
	assert.ErrorIs(t, err, mnemonic.ErrInvalidMnemonic)
	assert.Equal(t, 0, store.storeCalls)
}
