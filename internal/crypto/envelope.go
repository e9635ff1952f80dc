// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the length of every symmetric key in bytes.
	KeySize = 32
	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12
	// SaltSize is the length of salts produced by GenerateSalt.
	SaltSize = 16
	// KDFIterations is the fixed PBKDF2 iteration count.
	KDFIterations = 100_000

	authHashDomain = "vaultkeeper-auth"
)

// FallbackSalt is used when a caller derives a key without a salt. It keeps
// keys derived by older clients reproducible. Accounts created by this server
// always carry a random per-owner salt.
var FallbackSalt = []byte("vaultkeeper-default-salt")

type envelope struct {
	iterations int
	random     io.Reader
}

// NewEnvelope returns the production [Envelope].
func NewEnvelope() Envelope {
	return &envelope{
		iterations: KDFIterations,
		random:     rand.Reader,
	}
}

func (e *envelope) DeriveKey(password string, salt []byte) []byte {
	if len(salt) == 0 {
		salt = FallbackSalt
	}
	return pbkdf2.Key([]byte(password), salt, e.iterations, KeySize, sha256.New)
}

func (e *envelope) Encrypt(plaintext, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize)
	if _, err = io.ReadFull(e.random, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (e *envelope) Decrypt(payload string, key []byte) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrDecryptionFailed, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	if len(blob) < NonceSize+gcm.Overhead() {
		return nil, fmt.Errorf("%w: payload too short", ErrDecryptionFailed)
	}

	nonce, ciphertext := blob[:NonceSize], blob[NonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func (e *envelope) WrapKeyForContact(key []byte, publicKey *rsa.PublicKey) (string, error) {
	if len(key) != KeySize {
		return "", ErrInvalidKeySize
	}
	if publicKey == nil {
		return "", ErrInvalidPublicKey
	}

	wrapped, err := rsa.EncryptOAEP(sha256.New(), e.random, publicKey, key, nil)
	if err != nil {
		return "", fmt.Errorf("wrap key: %w", err)
	}

	return base64.StdEncoding.EncodeToString(wrapped), nil
}

func (e *envelope) UnwrapKey(wrapped string, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, ErrInvalidPrivateKey
	}

	blob, err := base64.StdEncoding.DecodeString(wrapped)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrUnwrapFailed, err)
	}

	key, err := rsa.DecryptOAEP(sha256.New(), nil, privateKey, blob, nil)
	if err != nil {
		return nil, ErrUnwrapFailed
	}
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}

	return key, nil
}

func (e *envelope) AuthHash(key []byte) string {
	h := sha256.New()
	h.Write(key)
	h.Write([]byte(authHashDomain))
	return hex.EncodeToString(h.Sum(nil))
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
