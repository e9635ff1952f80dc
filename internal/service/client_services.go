// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/vaultkeeper/internal/adapter"
	"github.com/MKhiriev/vaultkeeper/internal/crypto"
)

// ClientServices groups the services used by the command-line client.
type ClientServices struct {
	CryptoService  ClientCryptoService
	AuthService    ClientAuthService
	VaultService   ClientVaultService
	ContactService ClientContactService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, envelope crypto.Envelope) *ClientServices {
	cryptoSvc := NewClientCryptoService(envelope)

	return &ClientServices{
		CryptoService:  cryptoSvc,
		AuthService:    NewClientAuthService(serverAdapter, envelope, cryptoSvc),
		VaultService:   NewClientVaultService(serverAdapter, cryptoSvc),
		ContactService: NewClientContactService(serverAdapter, envelope),
	}
}
