// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/vaultkeeper/internal/adapter"
	"github.com/MKhiriev/vaultkeeper/internal/crypto"
	"github.com/MKhiriev/vaultkeeper/internal/mock"
	"github.com/MKhiriev/vaultkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestContactSvc(t *testing.T, ctrl *gomock.Controller) (ClientContactService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientContactService(mockAdapter, crypto.NewEnvelope()), mockAdapter
}

func TestClientContactService_GenerateKeyPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestContactSvc(t, ctrl)

	privatePEM, publicKey, err := svc.GenerateKeyPair(2048)
	require.NoError(t, err)

	privateKey, err := crypto.DecodePrivateKeyPEM(privatePEM)
	require.NoError(t, err)
	parsed, err := crypto.ParsePublicKey(publicKey)
	require.NoError(t, err)
	assert.True(t, privateKey.PublicKey.Equal(parsed))
}

func TestClientContactService_GenerateKeyPair_TooSmall(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestContactSvc(t, ctrl)

	_, _, err := svc.GenerateKeyPair(1024)
	assert.ErrorIs(t, err, crypto.ErrInvalidPrivateKey)
}

func TestClientContactService_AcceptInvitation_SendsDerivedPublicKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestContactSvc(t, ctrl)
	ctx := context.Background()

	privatePEM, publicKey, err := svc.GenerateKeyPair(2048)
	require.NoError(t, err)

	mockAdapter.EXPECT().AnswerInvitation(ctx, models.InvitationAnswer{Code: "code", Accept: true, PublicKey: publicKey}).
		Return(models.TrustedContact{ID: 3, Status: models.ContactActive}, nil)

	contact, err := svc.AcceptInvitation(ctx, "code", privatePEM)
	require.NoError(t, err)
	assert.Equal(t, models.ContactActive, contact.Status)
}

func TestClientContactService_AcceptInvitation_BadPEM(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestContactSvc(t, ctrl)

	_, err := svc.AcceptInvitation(context.Background(), "code", []byte("not a pem"))
	assert.ErrorIs(t, err, crypto.ErrInvalidPrivateKey)
}

func TestClientContactService_DeclineInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestContactSvc(t, ctrl)

	mockAdapter.EXPECT().AnswerInvitation(gomock.Any(), models.InvitationAnswer{Code: "code"}).
		Return(models.TrustedContact{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, ErrInvalidInvitation.Error()))

	_, err := svc.DeclineInvitation(context.Background(), "code")
	assert.ErrorIs(t, err, ErrInvalidInvitation)
}

func TestClientContactService_OpenVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestContactSvc(t, ctrl)
	ctx := context.Background()
	envelope := crypto.NewEnvelope()

	privatePEM, publicKeyText, err := svc.GenerateKeyPair(2048)
	require.NoError(t, err)
	publicKey, err := crypto.ParsePublicKey(publicKeyText)
	require.NoError(t, err)

	vaultKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	wrapped, err := envelope.WrapKeyForContact(vaultKey, publicKey)
	require.NoError(t, err)
	title, err := envelope.Encrypt([]byte("bank"), vaultKey)
	require.NoError(t, err)
	content, err := envelope.Encrypt([]byte("pin 1234"), vaultKey)
	require.NoError(t, err)

	mockAdapter.EXPECT().EmergencyEntries(ctx, int64(7), "access-token").Return(models.EmergencyEntries{
		OwnerID:    7,
		WrappedKey: wrapped,
		Entries:    []models.VaultEntryView{{ID: 1, Title: title, Content: content}},
	}, nil)

	entries, err := svc.OpenVault(ctx, 7, "access-token", privatePEM)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bank", entries[0].Title)
	assert.Equal(t, "pin 1234", entries[0].Content)
}

func TestClientContactService_OpenVault_KeyNotShared(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestContactSvc(t, ctrl)

	privatePEM, _, err := svc.GenerateKeyPair(2048)
	require.NoError(t, err)

	mockAdapter.EXPECT().EmergencyEntries(gomock.Any(), int64(7), "access-token").
		Return(models.EmergencyEntries{OwnerID: 7}, nil)

	_, err = svc.OpenVault(context.Background(), 7, "access-token", privatePEM)
	assert.ErrorIs(t, err, ErrKeyNotShared)
}

func TestClientContactService_OpenVault_TokenRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestContactSvc(t, ctrl)

	privatePEM, _, err := svc.GenerateKeyPair(2048)
	require.NoError(t, err)

	mockAdapter.EXPECT().EmergencyEntries(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.EmergencyEntries{}, fmt.Errorf("%w: %s", adapter.ErrForbidden, "Forbidden"))

	_, err = svc.OpenVault(context.Background(), 7, "stale", privatePEM)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestClientContactService_CollectToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestContactSvc(t, ctrl)
	ctx := context.Background()

	privatePEM, _, err := svc.GenerateKeyPair(2048)
	require.NoError(t, err)
	privateKey, err := crypto.DecodePrivateKeyPEM(privatePEM)
	require.NoError(t, err)
	sealed, err := crypto.SealToken("raw-access-token", &privateKey.PublicKey)
	require.NoError(t, err)

	mockAdapter.EXPECT().RequestStatus(ctx, int64(11), "bob@example.com").
		Return(models.RequestStatusView{RequestID: 11, Status: models.RequestApproved, SealedAccessToken: sealed}, nil)

	token, status, err := svc.CollectToken(ctx, 11, "bob@example.com", privatePEM)
	require.NoError(t, err)
	assert.Equal(t, "raw-access-token", token)
	assert.Equal(t, models.RequestApproved, status.Status)
}

func TestClientContactService_CollectToken_NotIssued(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestContactSvc(t, ctrl)

	privatePEM, _, err := svc.GenerateKeyPair(2048)
	require.NoError(t, err)

	mockAdapter.EXPECT().RequestStatus(gomock.Any(), int64(11), "bob@example.com").
		Return(models.RequestStatusView{RequestID: 11, Status: models.RequestPending, SecondsUntilAutoApproval: 60}, nil)

	_, status, err := svc.CollectToken(context.Background(), 11, "bob@example.com", privatePEM)
	assert.ErrorIs(t, err, ErrTokenNotIssued)
	assert.Equal(t, models.RequestPending, status.Status)
}

func TestClientContactService_CollectToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestContactSvc(t, ctrl)

	privatePEM, _, err := svc.GenerateKeyPair(2048)
	require.NoError(t, err)
	other, err := crypto.GenerateKeyPair(2048)
	require.NoError(t, err)
	sealed, err := crypto.SealToken("raw-access-token", &other.PublicKey)
	require.NoError(t, err)

	mockAdapter.EXPECT().RequestStatus(gomock.Any(), int64(11), "bob@example.com").
		Return(models.RequestStatusView{RequestID: 11, Status: models.RequestApproved, SealedAccessToken: sealed}, nil)

	_, _, err = svc.CollectToken(context.Background(), 11, "bob@example.com", privatePEM)
	assert.Error(t, err)
}
