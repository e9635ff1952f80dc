// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/rsa"
	"fmt"

	"github.com/MKhiriev/vaultkeeper/internal/crypto"
	"github.com/MKhiriev/vaultkeeper/models"
)

type clientCryptoService struct {
	envelope crypto.Envelope
	key      []byte
}

func NewClientCryptoService(envelope crypto.Envelope) ClientCryptoService {
	return &clientCryptoService{envelope: envelope}
}

func (c *clientCryptoService) SetVaultKey(key []byte) {
	c.key = append([]byte(nil), key...)
}

func (c *clientCryptoService) EncryptEntry(plain models.PlainEntry) (models.NewVaultEntry, error) {
	if len(c.key) == 0 {
		return models.NewVaultEntry{}, ErrVaultLocked
	}

	title, err := c.envelope.Encrypt([]byte(plain.Title), c.key)
	if err != nil {
		return models.NewVaultEntry{}, fmt.Errorf("encrypt title: %w", err)
	}
	content, err := c.envelope.Encrypt([]byte(plain.Content), c.key)
	if err != nil {
		return models.NewVaultEntry{}, fmt.Errorf("encrypt content: %w", err)
	}

	return models.NewVaultEntry{
		Title:                title,
		Content:              content,
		AllowEmergencyAccess: plain.AllowEmergencyAccess,
	}, nil
}

func (c *clientCryptoService) DecryptEntry(entry models.VaultEntry) (models.PlainEntry, error) {
	if len(c.key) == 0 {
		return models.PlainEntry{}, ErrVaultLocked
	}

	title, content, err := openEntry(c.envelope, c.key, entry.Title, entry.Content)
	if err != nil {
		return models.PlainEntry{}, fmt.Errorf("entry %d: %w", entry.ID, err)
	}

	return models.PlainEntry{
		ID:                   entry.ID,
		Title:                title,
		Content:              content,
		AllowEmergencyAccess: entry.AllowEmergencyAccess,
	}, nil
}

func (c *clientCryptoService) WrapVaultKey(publicKey *rsa.PublicKey) (string, error) {
	if len(c.key) == 0 {
		return "", ErrVaultLocked
	}
	return c.envelope.WrapKeyForContact(c.key, publicKey)
}

func openEntry(envelope crypto.Envelope, key []byte, sealedTitle, sealedContent string) (string, string, error) {
	title, err := envelope.Decrypt(sealedTitle, key)
	if err != nil {
		return "", "", fmt.Errorf("decrypt title: %w", err)
	}
	content, err := envelope.Decrypt(sealedContent, key)
	if err != nil {
		return "", "", fmt.Errorf("decrypt content: %w", err)
	}
	return string(title), string(content), nil
}
