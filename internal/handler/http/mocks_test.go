// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/config"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/service"
	"github.com/MKhiriev/vaultkeeper/models"
	"github.com/stretchr/testify/require"
)

// Service doubles. Each method field can be overridden per test case; an
// unset field panics, which flags unexpected calls.

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	paramsFn       func(ctx context.Context, email string) (models.UserParams, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) Params(ctx context.Context, email string) (models.UserParams, error) {
	return m.paramsFn(ctx, email)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockContactRegistry struct {
	addContactFn       func(ctx context.Context, ownerID int64, contact models.NewTrustedContact) (models.ContactInvitation, error)
	getContactFn       func(ctx context.Context, ownerID int64) (models.TrustedContact, error)
	answerInvitationFn func(ctx context.Context, answer models.InvitationAnswer) (models.TrustedContact, error)
	resetInactivityFn  func(ctx context.Context, ownerID, contactID int64) (models.TrustedContact, error)
	resetForOwnerFn    func(ctx context.Context, ownerID int64) error
	revokeFn           func(ctx context.Context, ownerID, contactID int64) (models.TrustedContact, error)
}

func (m *mockContactRegistry) AddContact(ctx context.Context, ownerID int64, contact models.NewTrustedContact) (models.ContactInvitation, error) {
	return m.addContactFn(ctx, ownerID, contact)
}

func (m *mockContactRegistry) GetContact(ctx context.Context, ownerID int64) (models.TrustedContact, error) {
	return m.getContactFn(ctx, ownerID)
}

func (m *mockContactRegistry) AnswerInvitation(ctx context.Context, answer models.InvitationAnswer) (models.TrustedContact, error) {
	return m.answerInvitationFn(ctx, answer)
}

func (m *mockContactRegistry) ResetInactivity(ctx context.Context, ownerID, contactID int64) (models.TrustedContact, error) {
	return m.resetInactivityFn(ctx, ownerID, contactID)
}

func (m *mockContactRegistry) ResetInactivityForOwner(ctx context.Context, ownerID int64) error {
	return m.resetForOwnerFn(ctx, ownerID)
}

func (m *mockContactRegistry) Revoke(ctx context.Context, ownerID, contactID int64) (models.TrustedContact, error) {
	return m.revokeFn(ctx, ownerID, contactID)
}

type mockAccessRequestService struct {
	createFn         func(ctx context.Context, request models.NewAccessRequest) (models.AccessRequest, error)
	submitByEmailFn  func(ctx context.Context, input models.EmergencyAccessInput) (models.AccessRequest, error)
	respondFn        func(ctx context.Context, requestID, ownerID int64, input models.ResponseInput) (models.AccessRequest, error)
	resolveFn        func(ctx context.Context, now time.Time) ([]models.AccessRequest, error)
	verifyTokenFn    func(ctx context.Context, token string) (models.TokenVerification, error)
	statusFn         func(ctx context.Context, requestID int64, contactEmail string) (models.RequestStatusView, error)
	listForOwnerFn   func(ctx context.Context, ownerID int64, pendingOnly bool) ([]models.AccessRequest, error)
	depositKeyWrapFn func(ctx context.Context, ownerID, requestID int64, wrappedKey string) error
}

func (m *mockAccessRequestService) Create(ctx context.Context, request models.NewAccessRequest) (models.AccessRequest, error) {
	return m.createFn(ctx, request)
}

func (m *mockAccessRequestService) SubmitByEmail(ctx context.Context, input models.EmergencyAccessInput) (models.AccessRequest, error) {
	return m.submitByEmailFn(ctx, input)
}

func (m *mockAccessRequestService) Respond(ctx context.Context, requestID, ownerID int64, input models.ResponseInput) (models.AccessRequest, error) {
	return m.respondFn(ctx, requestID, ownerID, input)
}

func (m *mockAccessRequestService) ResolveAutoApprovals(ctx context.Context, now time.Time) ([]models.AccessRequest, error) {
	return m.resolveFn(ctx, now)
}

func (m *mockAccessRequestService) VerifyToken(ctx context.Context, token string) (models.TokenVerification, error) {
	return m.verifyTokenFn(ctx, token)
}

func (m *mockAccessRequestService) Status(ctx context.Context, requestID int64, contactEmail string) (models.RequestStatusView, error) {
	return m.statusFn(ctx, requestID, contactEmail)
}

func (m *mockAccessRequestService) ListForOwner(ctx context.Context, ownerID int64, pendingOnly bool) ([]models.AccessRequest, error) {
	return m.listForOwnerFn(ctx, ownerID, pendingOnly)
}

func (m *mockAccessRequestService) DepositKeyWrap(ctx context.Context, ownerID, requestID int64, wrappedKey string) error {
	return m.depositKeyWrapFn(ctx, ownerID, requestID, wrappedKey)
}

type mockEmergencyGate struct {
	listFn func(ctx context.Context, token string, ownerID int64) (models.EmergencyEntries, error)
}

func (m *mockEmergencyGate) ListAccessibleEntries(ctx context.Context, token string, ownerID int64) (models.EmergencyEntries, error) {
	return m.listFn(ctx, token, ownerID)
}

type mockVaultEntryService struct {
	createFn       func(ctx context.Context, ownerID int64, entry models.NewVaultEntry) (models.VaultEntry, error)
	listFn         func(ctx context.Context, ownerID int64) ([]models.VaultEntry, error)
	setEmergencyFn func(ctx context.Context, ownerID, entryID int64, allow bool) (models.VaultEntry, error)
}

func (m *mockVaultEntryService) CreateEntry(ctx context.Context, ownerID int64, entry models.NewVaultEntry) (models.VaultEntry, error) {
	return m.createFn(ctx, ownerID, entry)
}

func (m *mockVaultEntryService) ListEntries(ctx context.Context, ownerID int64) ([]models.VaultEntry, error) {
	return m.listFn(ctx, ownerID)
}

func (m *mockVaultEntryService) SetEmergencyAccess(ctx context.Context, ownerID, entryID int64, allow bool) (models.VaultEntry, error) {
	return m.setEmergencyFn(ctx, ownerID, entryID, allow)
}

type mockActivityService struct {
	listFn func(ctx context.Context, ownerID int64, limit uint64) ([]models.ActivityEntry, error)
}

func (m *mockActivityService) ListActivity(ctx context.Context, ownerID int64, limit uint64) ([]models.ActivityEntry, error) {
	return m.listFn(ctx, ownerID, limit)
}

type mockSweepService struct {
	runAllFn func(ctx context.Context, now time.Time) (models.SweepResult, error)
}

func (m *mockSweepService) SweepInactivity(context.Context, time.Time) ([]models.AccessRequest, error) {
	panic("unexpected call")
}

func (m *mockSweepService) ResolveDue(context.Context, time.Time) ([]models.AccessRequest, error) {
	panic("unexpected call")
}

func (m *mockSweepService) RunAll(ctx context.Context, now time.Time) (models.SweepResult, error) {
	return m.runAllFn(ctx, now)
}

type mockAppInfoService struct {
	build models.BuildInfo
}

func (m *mockAppInfoService) GetBuildInfo(context.Context) models.BuildInfo {
	return m.build
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testSystemKey = "system-secret"
	testOwnerID   = int64(7)
	ownerBearer   = "Bearer owner.jwt"
)

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// newTestRouterHandler builds a Handler with a fixed clock and the system key
// set. Missing services are filled with an owner-accepting AuthService.
func newTestRouterHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = ownerAuth()
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{build: models.NewBuildInfo("test", "", "")}
	}

	h := NewHandler(svcs, config.Server{SystemKey: testSystemKey}, logger.Nop())
	h.now = func() time.Time { return testNow }
	return h
}

// ownerAuth accepts ownerBearer and rejects everything else.
func ownerAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, token string) (models.Token, error) {
			if token != "owner.jwt" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: testOwnerID}, nil
		},
	}
}

// serve runs req through the full router.
func serve(t *testing.T, h *Handler, method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func asOwner() map[string]string {
	return map[string]string{"Authorization": ownerBearer}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[map[string]string](t, rec)["error"]
}
