// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrDecryptionFailed  = errors.New("decryption failed")
	ErrUnwrapFailed      = errors.New("key unwrap failed")
	ErrInvalidKeySize    = errors.New("key must be 32 bytes")
	ErrInvalidPublicKey  = errors.New("invalid public key")
	ErrInvalidPrivateKey = errors.New("invalid private key")
)
