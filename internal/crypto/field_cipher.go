// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
	"golang.org/x/crypto/hkdf"
)

const (
	// cipherTextPrefix versions the serialized format: "v1:" followed by
	// base64(nonce ‖ ciphertext ‖ tag).
	cipherTextPrefix = "v1:"

	fieldKeyInfo = "go-pass-vault/vault-field/v1"
	fieldKeyLen  = 32
)

// aesGCMCipher is the AES-256-GCM implementation of [FieldCipher].
type aesGCMCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher derives a 256-bit key from secret with HKDF-SHA256 and
// returns a [FieldCipher] bound to it. The derivation is deterministic, so
// every process configured with the same secret reads the same data.
//
// Returns [ErrEmptySecret] when secret is empty.
func NewFieldCipher(secret string) (FieldCipher, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := make([]byte, fieldKeyLen)
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte(fieldKeyInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("derive field key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aesGCMCipher{aead: gcm}, nil
}

// Encrypt implements [FieldCipher]. A fresh random nonce is drawn for every
// call and prepended to the sealed data.
func (c *aesGCMCipher) Encrypt(plaintext string) (models.CipheredText, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return models.CipheredText(cipherTextPrefix + base64.StdEncoding.EncodeToString(blob)), nil
}

// Decrypt implements [FieldCipher].
func (c *aesGCMCipher) Decrypt(ciphertext models.CipheredText) (string, error) {
	encoded, ok := strings.CutPrefix(string(ciphertext), cipherTextPrefix)
	if !ok {
		return "", fmt.Errorf("%w: unknown format", ErrDecryption)
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryption, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize+c.aead.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return string(plaintext), nil
}
