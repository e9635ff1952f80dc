// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
)

// HashString returns hex(HMAC-SHA256(hashKey, data)). Used for owner
// authentication secrets.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// Digest returns hex(SHA-256(token)). Access tokens and invitation codes are
// high entropy, so an unkeyed digest is enough to store them.
func Digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// NewOpaqueToken returns size random bytes encoded as unpadded base64url.
func NewOpaqueToken(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// EqualSecret compares two secrets in constant time.
func EqualSecret(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
