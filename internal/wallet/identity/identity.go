// Package identity composes the mnemonic engine and key derivation into the
// single identity a process signs with: one signer for authentication, one
// for the Ethereum wallet, both derived from the same seed.
package identity

import (
	"github.com/pkg/errors"
	"github/chapool/go-signer/internal/wallet/derive"
	"github/chapool/go-signer/internal/wallet/mnemonic"
	"github/chapool/go-signer/internal/wallet/signer"
)

// Identity holds the mnemonic and the two signers derived from it. It is
// immutable after construction; both keys are derived exactly once.
type Identity struct {
	mnemonic       *mnemonic.Mnemonic
	identitySigner *signer.Signer
	walletSigner   *signer.Signer
}

// FromWords restores an Identity from a persisted space-separated word list.
func FromWords(words string) (*Identity, error) {
	m, err := mnemonic.FromWords(words)
	if err != nil {
		return nil, err
	}
	return fromMnemonic(m)
}

// FromEntropy creates an Identity from explicit entropy bytes.
func FromEntropy(entropy []byte) (*Identity, error) {
	m, err := mnemonic.FromEntropy(entropy)
	if err != nil {
		return nil, err
	}
	return fromMnemonic(m)
}

// Generate creates an Identity from fresh OS entropy.
func Generate() (*Identity, error) {
	m, err := mnemonic.Generate()
	if err != nil {
		return nil, err
	}
	return fromMnemonic(m)
}

func fromMnemonic(m *mnemonic.Mnemonic) (*Identity, error) {
	seed := m.Seed()

	identityKey, err := derive.IdentityKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive identity key")
	}
	walletKey, err := derive.WalletKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive wallet key")
	}

	// Clear raw key material once the signers own it
	defer func() {
		for i := range identityKey {
			identityKey[i] = 0
		}
		for i := range walletKey {
			walletKey[i] = 0
		}
	}()

	identitySigner, err := signer.New(identityKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity signer")
	}
	walletSigner, err := signer.New(walletKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create wallet signer")
	}

	return &Identity{
		mnemonic:       m,
		identitySigner: identitySigner,
		walletSigner:   walletSigner,
	}, nil
}

// Words returns the mnemonic word list backing this identity.
func (i *Identity) Words() string {
	return i.mnemonic.Words()
}

// IdentitySigner returns the signer for the authentication key (m/0'/1/0).
func (i *Identity) IdentitySigner() *signer.Signer {
	return i.identitySigner
}

// WalletSigner returns the signer for the Ethereum wallet key
// (m/44'/60'/0'/0/0).
func (i *Identity) WalletSigner() *signer.Signer {
	return i.walletSigner
}

// IdentityAddress returns the EIP-55 address of the identity key.
func (i *Identity) IdentityAddress() string {
	return i.identitySigner.Address()
}

// WalletAddress returns the EIP-55 address of the wallet key.
func (i *Identity) WalletAddress() string {
	return i.walletSigner.Address()
}
