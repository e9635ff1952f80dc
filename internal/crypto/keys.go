// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"io"
)

// ContactKeyBits is the RSA modulus size for contact key pairs.
const ContactKeyBits = 3072

const minContactKeyBits = 2048

// GenerateSalt returns SaltSize random bytes.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// GenerateKey returns a random content key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}

// GenerateKeyPair creates an RSA key pair for a trusted contact.
func GenerateKeyPair(bits int) (*rsa.PrivateKey, error) {
	if bits < minContactKeyBits {
		return nil, fmt.Errorf("%w: at least %d bits required", ErrInvalidPrivateKey, minContactKeyBits)
	}
	return rsa.GenerateKey(rand.Reader, bits)
}

// MarshalPublicKey encodes a public key as base64 PKIX DER, the form stored on
// the contact record.
func MarshalPublicKey(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("marshal public key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(der), nil
}

// ParsePublicKey decodes the output of MarshalPublicKey and rejects keys that
// are not RSA or are too small.
func ParsePublicKey(encoded string) (*rsa.PublicKey, error) {
	der, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPublicKey)
	}
	if pub.N.BitLen() < minContactKeyBits {
		return nil, fmt.Errorf("%w: key too small", ErrInvalidPublicKey)
	}

	return pub, nil
}

// EncodePrivateKeyPEM renders a private key as a PKCS#8 PEM block.
func EncodePrivateKeyPEM(priv *rsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("marshal private key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}

// DecodePrivateKeyPEM parses the output of EncodePrivateKeyPEM.
func DecodePrivateKeyPEM(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block", ErrInvalidPrivateKey)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPrivateKey)
	}

	return priv, nil
}

// SealToken encrypts a short secret such as an access token for the holder
// of pub with RSA-OAEP (SHA-256). The result is base64.
func SealToken(token string, pub *rsa.PublicKey) (string, error) {
	if pub == nil {
		return "", ErrInvalidPublicKey
	}

	sealed, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, []byte(token), nil)
	if err != nil {
		return "", fmt.Errorf("seal token: %w", err)
	}

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenToken reverses SealToken. Any failure is reported as [ErrUnwrapFailed].
func OpenToken(sealed string, priv *rsa.PrivateKey) (string, error) {
	if priv == nil {
		return "", ErrInvalidPrivateKey
	}

	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrUnwrapFailed, err)
	}

	token, err := rsa.DecryptOAEP(sha256.New(), nil, priv, blob, nil)
	if err != nil {
		return "", ErrUnwrapFailed
	}

	return string(token), nil
}
