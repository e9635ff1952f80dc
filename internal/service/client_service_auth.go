// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/vaultkeeper/internal/adapter"
	"github.com/MKhiriev/vaultkeeper/internal/crypto"
	"github.com/MKhiriev/vaultkeeper/models"
)

type clientAuthService struct {
	adapter             adapter.ServerAdapter
	envelope            crypto.Envelope
	clientCryptoService ClientCryptoService
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, envelope crypto.Envelope, cryptoSvc ClientCryptoService) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, envelope: envelope, clientCryptoService: cryptoSvc}
}

func (a *clientAuthService) Register(ctx context.Context, creds models.Credentials) error {
	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return ErrInvalidDataProvided
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return fmt.Errorf("error generating salt: %w", err)
	}

	key := a.envelope.DeriveKey(creds.Password, salt)

	user := models.User{
		Email:          strings.TrimSpace(creds.Email),
		Name:           strings.TrimSpace(creds.Name),
		AuthHash:       a.envelope.AuthHash(key),
		EncryptionSalt: base64.StdEncoding.EncodeToString(salt),
	}

	if _, err = a.adapter.Register(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	a.clientCryptoService.SetVaultKey(key)
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) error {
	email := strings.TrimSpace(creds.Email)
	if email == "" || creds.Password == "" {
		return ErrInvalidDataProvided
	}

	params, err := a.adapter.RequestParams(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	salt, err := base64.StdEncoding.DecodeString(params.EncryptionSalt)
	if err != nil {
		return fmt.Errorf("decode encryption salt: %w", err)
	}
	key := a.envelope.DeriveKey(creds.Password, salt)

	user := models.User{Email: email, AuthHash: a.envelope.AuthHash(key)}
	if err = a.adapter.Login(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	a.clientCryptoService.SetVaultKey(key)
	return nil
}
