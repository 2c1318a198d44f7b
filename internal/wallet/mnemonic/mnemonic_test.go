package mnemonic_test

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-signer/internal/wallet/mnemonic"
)

// Zero entropy is the classic BIP39 test vector.
const (
	zeroEntropyWords = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	zeroEntropySeed  = "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"
)

func TestFromEntropyKnownVector(t *testing.T) {
	m, err := mnemonic.FromEntropy(make([]byte, 16))
	require.NoError(t, err)

	assert.Equal(t, zeroEntropyWords, m.Words())
	assert.Equal(t, zeroEntropySeed, hex.EncodeToString(m.Seed()))
}

func TestFromEntropyRoundTrip(t *testing.T) {
	for _, size := range []int{16, 20, 24, 28, 32} {
		entropy := bytes.Repeat([]byte{0x7f}, size)

		fromEntropy, err := mnemonic.FromEntropy(entropy)
		require.NoError(t, err, "entropy size %d", size)

		fromWords, err := mnemonic.FromWords(fromEntropy.Words())
		require.NoError(t, err)

		assert.Equal(t, fromEntropy.Words(), fromWords.Words())
		assert.Equal(t, fromEntropy.Seed(), fromWords.Seed())
	}
}

func TestFromEntropyRejectsBadLengths(t *testing.T) {
	for _, size := range []int{1, 3, 15, 17, 33} {
		_, err := mnemonic.FromEntropy(make([]byte, size))
		require.Error(t, err, "entropy size %d", size)
		assert.ErrorIs(t, err, mnemonic.ErrInvalidEntropyLength)
	}

	_, err := mnemonic.FromEntropy(nil)
	assert.ErrorIs(t, err, mnemonic.ErrInvalidEntropyLength)
}

// Multiples of 4 bytes outside go-bip39's 16..32 byte range pass the local
// guard but are rejected by the library with the same sentinel.
func TestFromEntropyRejectsOutOfRangeMultiples(t *testing.T) {
	for _, size := range []int{4, 8, 12, 36, 40} {
		_, err := mnemonic.FromEntropy(make([]byte, size))
		require.Error(t, err, "entropy size %d", size)
		assert.ErrorIs(t, err, mnemonic.ErrInvalidEntropyLength)
	}
}

func TestFromWordsRejectsInvalid(t *testing.T) {
	tests := []string{
		"",
		"not a mnemonic at all",
		// valid words, broken checksum
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
	}

	for _, words := range tests {
		_, err := mnemonic.FromWords(words)
		assert.ErrorIs(t, err, mnemonic.ErrInvalidMnemonic)
	}
}

func TestValidate(t *testing.T) {
	assert.True(t, mnemonic.Validate(zeroEntropyWords))
	assert.True(t, mnemonic.Validate("  "+zeroEntropyWords+"  "))
	assert.False(t, mnemonic.Validate("definitely not twelve valid words"))
}

func TestGenerate(t *testing.T) {
	m, err := mnemonic.Generate()
	require.NoError(t, err)

	// 128 bits of entropy produce a 12-word mnemonic
	assert.Len(t, strings.Fields(m.Words()), 12)
	assert.True(t, mnemonic.Validate(m.Words()))

	// Independent generations must differ
	other, err := mnemonic.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, m.Words(), other.Words())
}
