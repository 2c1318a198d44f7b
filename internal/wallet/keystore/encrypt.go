package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"
)

// encryptMnemonic encrypts a mnemonic using Ethereum keystore v3 format
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func encryptMnemonic(mnemonic string, password string) (*Document, error) {
	//nolint:mnd // 32 is the standard salt size for scrypt
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	//nolint:mnd // 16 is the standard IV size for AES-128-CTR
	iv := make([]byte, 16) // AES-128-CTR requires 16-byte IV
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}

	// Derive encryption key using scrypt
	params := DefaultScryptParams()
	params.Salt = salt

	derivedKey, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	// Encrypt mnemonic using AES-128-CTR (first 16 bytes of the derived key)
	ciphertext, err := encryptAES128CTR(derivedKey[:16], iv, []byte(mnemonic))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt mnemonic: %w", err)
	}

	// MAC = Keccak-256(derivedKey[16:32] || ciphertext), per keystore v3
	mac := calculateMAC(derivedKey[16:32], ciphertext)

	document := &Document{
		//nolint:mnd // 3 is the Ethereum keystore v3 version number
		Version: 3,
		ID:      uuid.New().String(),
	}

	document.Crypto.Ciphertext = hex.EncodeToString(ciphertext)
	document.Crypto.CipherParams.IV = hex.EncodeToString(iv)
	document.Crypto.Cipher = "aes-128-ctr"
	document.Crypto.KDF = "scrypt"
	document.Crypto.KDFParams.DKLen = params.DKLen
	document.Crypto.KDFParams.Salt = hex.EncodeToString(salt)
	document.Crypto.KDFParams.N = params.N
	document.Crypto.KDFParams.R = params.R
	document.Crypto.KDFParams.P = params.P
	document.Crypto.MAC = hex.EncodeToString(mac)

	return document, nil
}

// encryptAES128CTR encrypts data using AES-128-CTR mode
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func encryptAES128CTR(key []byte, iv []byte, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	ciphertext := make([]byte, len(plaintext))
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(ciphertext, plaintext)

	return ciphertext, nil
}

// calculateMAC calculates Keccak-256(derivedKey[16:32] || ciphertext)
func calculateMAC(key []byte, ciphertext []byte) []byte {
	return ethcrypto.Keccak256(key, ciphertext)
}
