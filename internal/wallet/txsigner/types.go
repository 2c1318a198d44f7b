package txsigner

import "context"

// Service signs raw RLP-encoded Ethereum transactions.
type Service interface {
	// SignTransaction turns an unsigned raw transaction (hex, with or
	// without 0x prefix) into a signed 0x-prefixed raw transaction.
	//
	// Unsigned input is either the 6-field legacy form
	// [nonce, gasPrice, gasLimit, to, value, data] or the 9-field EIP-155
	// form with [chainId, 0x, 0x] appended. Any malformed, already-signed
	// or otherwise unusable input fails with ErrCannotSign.
	SignTransaction(ctx context.Context, unsignedHex string) (string, error)
}
