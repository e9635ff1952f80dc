// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "crypto/rsa"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Envelope protects vault content on the client and shares the content key
// with a trusted contact.
//
// Flow:
//
//	key     = DeriveKey(password, salt)          owner side
//	blob    = Encrypt(plaintext, key)            owner side, stored on server
//	wrapped = WrapKeyForContact(key, publicKey)  owner side, deposited for one request
//	key     = UnwrapKey(wrapped, privateKey)     contact side
//	plain   = Decrypt(blob, key)                 contact side
//
// The server only ever handles base64 text produced by this package.
type Envelope interface {
	// DeriveKey stretches a password into a 32-byte key. The result is
	// deterministic, so a lost password means lost data.
	DeriveKey(password string, salt []byte) []byte

	// Encrypt seals plaintext with AES-256-GCM and returns
	// base64(nonce || ciphertext).
	Encrypt(plaintext, key []byte) (string, error)

	// Decrypt reverses Encrypt. Any failure is reported as ErrDecryptionFailed.
	Decrypt(payload string, key []byte) ([]byte, error)

	// WrapKeyForContact encrypts key with RSA-OAEP/SHA-256 for publicKey.
	WrapKeyForContact(key []byte, publicKey *rsa.PublicKey) (string, error)

	// UnwrapKey reverses WrapKeyForContact.
	UnwrapKey(wrapped string, privateKey *rsa.PrivateKey) ([]byte, error)

	// AuthHash turns a derived key into the secret sent to the server on
	// login. The key itself never leaves the client.
	AuthHash(key []byte) string
}
