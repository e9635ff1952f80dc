// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rsa"

	"github.com/MKhiriev/vaultkeeper/models"
)

// ClientCryptoService holds the owner's vault key for the lifetime of a CLI
// session. The key must be set via SetVaultKey before any other method.
type ClientCryptoService interface {
	// SetVaultKey stores the key derived from the master password.
	SetVaultKey(key []byte)

	// EncryptEntry seals the title and content of a plain entry.
	EncryptEntry(plain models.PlainEntry) (models.NewVaultEntry, error)

	// DecryptEntry opens an owner's stored entry.
	DecryptEntry(entry models.VaultEntry) (models.PlainEntry, error)

	// WrapVaultKey encrypts the vault key for a contact's public key.
	WrapVaultKey(publicKey *rsa.PublicKey) (string, error)
}

// ClientAuthService registers and logs in an owner. Key derivation happens
// here, so only the auth hash reaches the server.
type ClientAuthService interface {
	// Register generates a salt, derives the vault key and creates the
	// account. On success the crypto service holds the key.
	Register(ctx context.Context, creds models.Credentials) error

	// Login fetches the owner's salt, derives the vault key and
	// authenticates. On success the crypto service holds the key.
	Login(ctx context.Context, creds models.Credentials) error
}

// ClientVaultService is the owner side of the vault: encrypted entries and
// sharing the vault key with an approved contact.
type ClientVaultService interface {
	// AddEntry encrypts and stores an entry.
	AddEntry(ctx context.Context, plain models.PlainEntry) (models.VaultEntry, error)

	// ListEntries downloads and decrypts all entries.
	ListEntries(ctx context.Context) ([]models.PlainEntry, error)

	// ShareKey wraps the vault key for the current trusted contact and
	// deposits it for requestID.
	ShareKey(ctx context.Context, requestID int64) error
}

// ClientContactService is the trusted contact side: key pair management,
// answering an invitation and opening a shared vault.
type ClientContactService interface {
	// GenerateKeyPair returns a PEM private key and the encoded public key
	// to hand to the server when accepting an invitation.
	GenerateKeyPair(bits int) (privatePEM []byte, publicKey string, err error)

	// AcceptInvitation accepts an invitation and registers the public key
	// derived from privatePEM.
	AcceptInvitation(ctx context.Context, code string, privatePEM []byte) (models.TrustedContact, error)

	// DeclineInvitation declines an invitation.
	DeclineInvitation(ctx context.Context, code string) (models.TrustedContact, error)

	// OpenVault fetches the entries shared by an owner, unwraps the vault
	// key with privatePEM and decrypts them.
	OpenVault(ctx context.Context, ownerID int64, token string, privatePEM []byte) ([]models.PlainEntry, error)

	// CollectToken fetches the sealed access token of an approved request
	// and opens it with privatePEM.
	CollectToken(ctx context.Context, requestID int64, contactEmail string, privatePEM []byte) (string, models.RequestStatusView, error)
}
