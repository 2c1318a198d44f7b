// Package txsigner turns unsigned RLP-encoded Ethereum transactions into
// signed ones, handling both the legacy 6-field and the EIP-155 9-field
// encodings.
package txsigner

import (
	"context"

	"github.com/pkg/errors"
	"github/chapool/go-signer/internal/util"
	"github/chapool/go-signer/internal/wallet/signer"
)

// ErrCannotSign is the single failure the public boundary reports. The
// operation is all-or-nothing: no partial result is exposed and the concrete
// cause is deliberately not distinguished for callers.
var ErrCannotSign = errors.New("could not sign transaction")

type service struct {
	signer *signer.Signer
}

// NewService creates a new transaction signing Service around the wallet
// signer.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(walletSigner *signer.Signer) (Service, error) {
	if walletSigner == nil {
		return nil, errors.New("wallet signer is required")
	}

	return &service{
		signer: walletSigner,
	}, nil
}

// SignTransaction signs an unsigned raw transaction, collapsing every
// internal failure into ErrCannotSign.
func (s *service) SignTransaction(ctx context.Context, unsignedHex string) (string, error) {
	log := util.LogFromContext(ctx)

	signed, err := s.sign(unsignedHex)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to sign raw transaction")
		return "", ErrCannotSign
	}

	return signed, nil
}
