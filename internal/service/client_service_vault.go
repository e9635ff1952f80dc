// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vaultkeeper/internal/adapter"
	"github.com/MKhiriev/vaultkeeper/internal/crypto"
	"github.com/MKhiriev/vaultkeeper/models"
)

type clientVaultService struct {
	adapter adapter.ServerAdapter
	crypto  ClientCryptoService
}

func NewClientVaultService(serverAdapter adapter.ServerAdapter, cryptoSvc ClientCryptoService) ClientVaultService {
	return &clientVaultService{adapter: serverAdapter, crypto: cryptoSvc}
}

func (v *clientVaultService) AddEntry(ctx context.Context, plain models.PlainEntry) (models.VaultEntry, error) {
	sealed, err := v.crypto.EncryptEntry(plain)
	if err != nil {
		return models.VaultEntry{}, err
	}

	entry, err := v.adapter.CreateEntry(ctx, sealed)
	if err != nil {
		return models.VaultEntry{}, mapAdapterError(err)
	}

	return entry, nil
}

func (v *clientVaultService) ListEntries(ctx context.Context) ([]models.PlainEntry, error) {
	entries, err := v.adapter.ListEntries(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	plain := make([]models.PlainEntry, 0, len(entries))
	for _, entry := range entries {
		opened, err := v.crypto.DecryptEntry(entry)
		if err != nil {
			return nil, err
		}
		plain = append(plain, opened)
	}

	return plain, nil
}

// ShareKey deposits the wrapped key for requestID. The server keeps it no
// longer than the access window of the request.
func (v *clientVaultService) ShareKey(ctx context.Context, requestID int64) error {
	contact, err := v.adapter.GetContact(ctx)
	if err != nil {
		return mapAdapterError(err)
	}
	if contact.PublicKey == "" {
		return ErrNoPublicKey
	}

	publicKey, err := crypto.ParsePublicKey(contact.PublicKey)
	if err != nil {
		return fmt.Errorf("contact public key: %w", err)
	}

	wrapped, err := v.crypto.WrapVaultKey(publicKey)
	if err != nil {
		return fmt.Errorf("wrap vault key: %w", err)
	}

	if err = v.adapter.DepositKeyWrap(ctx, requestID, wrapped); err != nil {
		return mapAdapterError(err)
	}
	return nil
}
