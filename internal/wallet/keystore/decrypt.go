package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// decryptMnemonic decrypts a mnemonic from Ethereum keystore v3 format
func decryptMnemonic(document *Document, password string) (string, error) {
	salt, err := hex.DecodeString(document.Crypto.KDFParams.Salt)
	if err != nil {
		return "", fmt.Errorf("failed to decode salt: %w", err)
	}

	//nolint:varnamelen // iv is a common abbreviation for initialization vector
	iv, err := hex.DecodeString(document.Crypto.CipherParams.IV)
	if err != nil {
		return "", fmt.Errorf("failed to decode IV: %w", err)
	}

	ciphertext, err := hex.DecodeString(document.Crypto.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	expectedMAC, err := hex.DecodeString(document.Crypto.MAC)
	if err != nil {
		return "", fmt.Errorf("failed to decode MAC: %w", err)
	}

	// Derive encryption key using scrypt
	derivedKey, err := scrypt.Key(
		[]byte(password),
		salt,
		document.Crypto.KDFParams.N,
		document.Crypto.KDFParams.R,
		document.Crypto.KDFParams.P,
		document.Crypto.KDFParams.DKLen,
	)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	// Verify MAC before touching the ciphertext
	mac := calculateMAC(derivedKey[16:32], ciphertext)
	if len(mac) != len(expectedMAC) || subtle.ConstantTimeCompare(mac, expectedMAC) != 1 {
		return "", fmt.Errorf("invalid password: MAC mismatch")
	}

	// Decrypt mnemonic using AES-128-CTR
	plaintext, err := decryptAES128CTR(derivedKey[:16], iv, ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt mnemonic: %w", err)
	}

	return string(plaintext), nil
}

// decryptAES128CTR decrypts data using AES-128-CTR mode
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func decryptAES128CTR(key []byte, iv []byte, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(plaintext, ciphertext)

	return plaintext, nil
}
