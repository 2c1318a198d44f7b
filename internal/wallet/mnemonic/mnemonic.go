// Package mnemonic wraps BIP39 word-list handling: validation, import from
// words or raw entropy, generation from OS randomness and seed stretching.
package mnemonic

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

var (
	// ErrInvalidMnemonic marks a word list with a bad length or checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidEntropyLength marks entropy that is empty or not a
	// multiple of 32 bits.
	ErrInvalidEntropyLength = errors.New("entropy length must be a positive multiple of 4 bytes")

	// ErrRandomSource marks a failure of the OS entropy source. There is no
	// safe way to continue deriving key material without randomness, so
	// callers at the process boundary should treat this as fatal.
	ErrRandomSource = errors.New("entropy source failed")
)

// generateEntropyBits is fixed at 128 bits (16 bytes), producing a 12-word
// mnemonic.
const generateEntropyBits = 128

// Mnemonic is an immutable, checksum-valid BIP39 word sequence.
type Mnemonic struct {
	words string
}

// Validate reports whether words forms a valid BIP39 sequence in the English
// wordlist.
func Validate(words string) bool {
	return bip39.IsMnemonicValid(strings.TrimSpace(words))
}

// FromWords builds a Mnemonic from a space-separated word list.
func FromWords(words string) (*Mnemonic, error) {
	words = strings.TrimSpace(words)
	if !bip39.IsMnemonicValid(words) {
		return nil, ErrInvalidMnemonic
	}
	return &Mnemonic{words: words}, nil
}

// FromEntropy builds a Mnemonic encoding the given entropy. The length guard
// runs before go-bip39 sees the input so that malformed entropy is a
// recoverable error rather than a library fault. go-bip39 only accepts 128 to
// 256 bits of entropy, so a multiple of 4 bytes outside the 16..32 byte range
// still fails with a wrapped ErrInvalidEntropyLength.
func FromEntropy(entropy []byte) (*Mnemonic, error) {
	if len(entropy) == 0 || len(entropy)*8%32 != 0 {
		return nil, ErrInvalidEntropyLength
	}

	words, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidEntropyLength, err.Error())
	}

	return &Mnemonic{words: words}, nil
}

// Generate creates a fresh 12-word Mnemonic from the OS entropy source.
func Generate() (*Mnemonic, error) {
	entropy, err := bip39.NewEntropy(generateEntropyBits)
	if err != nil {
		return nil, errors.Wrap(ErrRandomSource, err.Error())
	}
	return FromEntropy(entropy)
}

// Words returns the space-separated word list.
func (m *Mnemonic) Words() string {
	return m.words
}

// Seed derives the binary seed via the BIP39 PBKDF2 stretch with an empty
// passphrase. The result is deterministic for a given word list.
func (m *Mnemonic) Seed() []byte {
	return bip39.NewSeed(m.words, "")
}
