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

type clientContactService struct {
	adapter  adapter.ServerAdapter
	envelope crypto.Envelope
}

func NewClientContactService(serverAdapter adapter.ServerAdapter, envelope crypto.Envelope) ClientContactService {
	return &clientContactService{adapter: serverAdapter, envelope: envelope}
}

func (c *clientContactService) GenerateKeyPair(bits int) ([]byte, string, error) {
	privateKey, err := crypto.GenerateKeyPair(bits)
	if err != nil {
		return nil, "", err
	}

	privatePEM, err := crypto.EncodePrivateKeyPEM(privateKey)
	if err != nil {
		return nil, "", err
	}
	publicKey, err := crypto.MarshalPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, "", err
	}

	return privatePEM, publicKey, nil
}

func (c *clientContactService) AcceptInvitation(ctx context.Context, code string, privatePEM []byte) (models.TrustedContact, error) {
	privateKey, err := crypto.DecodePrivateKeyPEM(privatePEM)
	if err != nil {
		return models.TrustedContact{}, err
	}
	publicKey, err := crypto.MarshalPublicKey(&privateKey.PublicKey)
	if err != nil {
		return models.TrustedContact{}, err
	}

	contact, err := c.adapter.AnswerInvitation(ctx, models.InvitationAnswer{
		Code:      code,
		Accept:    true,
		PublicKey: publicKey,
	})
	if err != nil {
		return models.TrustedContact{}, mapAdapterError(err)
	}
	return contact, nil
}

func (c *clientContactService) DeclineInvitation(ctx context.Context, code string) (models.TrustedContact, error) {
	contact, err := c.adapter.AnswerInvitation(ctx, models.InvitationAnswer{Code: code, Accept: false})
	if err != nil {
		return models.TrustedContact{}, mapAdapterError(err)
	}
	return contact, nil
}

func (c *clientContactService) OpenVault(ctx context.Context, ownerID int64, token string, privatePEM []byte) ([]models.PlainEntry, error) {
	privateKey, err := crypto.DecodePrivateKeyPEM(privatePEM)
	if err != nil {
		return nil, err
	}

	shared, err := c.adapter.EmergencyEntries(ctx, ownerID, token)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	if shared.WrappedKey == "" {
		return nil, ErrKeyNotShared
	}

	key, err := c.envelope.UnwrapKey(shared.WrappedKey, privateKey)
	if err != nil {
		return nil, fmt.Errorf("unwrap vault key: %w", err)
	}

	plain := make([]models.PlainEntry, 0, len(shared.Entries))
	for _, view := range shared.Entries {
		title, content, err := openEntry(c.envelope, key, view.Title, view.Content)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", view.ID, err)
		}
		plain = append(plain, models.PlainEntry{
			ID:                   view.ID,
			Title:                title,
			Content:              content,
			AllowEmergencyAccess: true,
		})
	}

	return plain, nil
}

func (c *clientContactService) CollectToken(ctx context.Context, requestID int64, contactEmail string, privatePEM []byte) (string, models.RequestStatusView, error) {
	privateKey, err := crypto.DecodePrivateKeyPEM(privatePEM)
	if err != nil {
		return "", models.RequestStatusView{}, err
	}

	status, err := c.adapter.RequestStatus(ctx, requestID, contactEmail)
	if err != nil {
		return "", models.RequestStatusView{}, mapAdapterError(err)
	}
	if status.SealedAccessToken == "" {
		return "", status, ErrTokenNotIssued
	}

	token, err := crypto.OpenToken(status.SealedAccessToken, privateKey)
	if err != nil {
		return "", status, fmt.Errorf("open access token: %w", err)
	}

	return token, status, nil
}
