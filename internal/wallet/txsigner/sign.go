package txsigner

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github/chapool/go-signer/internal/rlp"
)

const (
	legacyFieldCount = 6
	eip155FieldCount = 9

	chainIDIndex = 6
	rIndex       = 7
	sIndex       = 8

	signatureHexLength = 130

	legacyVOffset = 27
	eip155VOffset = 35
)

// Internal failure causes. The public boundary collapses all of them into
// ErrCannotSign; they exist so tests can tell the checks apart.
var (
	errNotByteStringList    = errors.New("transaction RLP is not a flat list of byte strings")
	errUnexpectedFieldCount = errors.New("transaction must have 6 or 9 fields")
	errAlreadySigned        = errors.New("transaction already carries a signature")
	errSignatureParse       = errors.New("signature is not 130 hex characters")
)

func (s *service) sign(unsignedHex string) (string, error) {
	item, err := rlp.DecodeHex(unsignedHex)
	if err != nil {
		return "", err
	}

	fields, err := byteStringFields(item)
	if err != nil {
		return "", err
	}

	var chainID *big.Int
	switch len(fields) {
	case legacyFieldCount:
		// Legacy transaction, no replay protection.
	case eip155FieldCount:
		if len(fields[rIndex].Bytes()) != 0 || len(fields[sIndex].Bytes()) != 0 {
			return "", errAlreadySigned
		}
		id := new(big.Int).SetBytes(fields[chainIDIndex].Bytes())
		if id.Sign() == 0 {
			// Chain id zero carries no replay protection: drop the
			// placeholder fields and sign as legacy.
			fields = trimSignaturePlaceholders(fields)
		} else {
			chainID = id
		}
	default:
		return "", errors.Wrapf(errUnexpectedFieldCount, "got %d", len(fields))
	}

	// The signing payload is the RLP of the list as it stands here: 6
	// fields for legacy, all 9 (including chainId and placeholders) for
	// EIP-155.
	payload := hex.EncodeToString(rlp.Encode(rlp.List(fields...)))
	signature, err := s.signer.SignHex(payload)
	if err != nil {
		return "", err
	}

	r, sBytes, recoveryID, err := splitSignature(signature)
	if err != nil {
		return "", err
	}

	// The second trim is a no-op unless the EIP-155 placeholders are still
	// present; a list already cut to 6 fields passes through unchanged.
	fields = trimSignaturePlaceholders(fields)

	v := finalV(recoveryID, chainID)
	fields = append(fields, rlp.String(v.Bytes()), rlp.String(r), rlp.String(sBytes))

	return rlp.EncodeHex(rlp.List(fields...)), nil
}

// byteStringFields flattens a decoded transaction into its fields, rejecting
// anything that is not a list of plain byte strings.
func byteStringFields(item rlp.Item) ([]rlp.Item, error) {
	if !item.IsList() {
		return nil, errNotByteStringList
	}

	fields := item.Items()
	for _, field := range fields {
		if field.IsList() {
			return nil, errNotByteStringList
		}
	}

	return fields, nil
}

// trimSignaturePlaceholders drops the trailing [chainId, r, s] triple from a
// 9-field list. Anything else is returned unchanged, which makes repeated
// trimming idempotent.
func trimSignaturePlaceholders(fields []rlp.Item) []rlp.Item {
	if len(fields) == eip155FieldCount {
		return fields[:legacyFieldCount]
	}
	return fields
}

// splitSignature cuts a 130-hex-char signature into r (chars 0-63),
// s (chars 64-127) and the recovery id (chars 128-129).
func splitSignature(signature string) (r, s []byte, recoveryID byte, err error) {
	signature = strings.TrimPrefix(signature, "0x")
	if len(signature) != signatureHexLength {
		return nil, nil, 0, errors.Wrapf(errSignatureParse, "got %d", len(signature))
	}

	raw, err := hex.DecodeString(signature)
	if err != nil {
		return nil, nil, 0, errors.Wrap(errSignatureParse, err.Error())
	}

	return raw[0:32], raw[32:64], raw[64], nil
}

// finalV computes the recovery value for the signed encoding:
// v + 35 + chainId*2 under EIP-155, v + 27 for legacy transactions.
func finalV(recoveryID byte, chainID *big.Int) *big.Int {
	if chainID == nil {
		return new(big.Int).SetUint64(uint64(recoveryID) + legacyVOffset)
	}

	v := new(big.Int).SetUint64(uint64(recoveryID) + eip155VOffset)
	return v.Add(v, new(big.Int).Mul(chainID, big.NewInt(2)))
}
