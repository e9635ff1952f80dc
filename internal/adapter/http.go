// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/vaultkeeper/internal/config"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/utils"
	"github.com/MKhiriev/vaultkeeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises the base URL from cfg.HTTPAddress and
// configures the request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. POST /api/user/register. The bearer
// token from the Authorization response header is stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.UserParams, error) {
	var params models.UserParams

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		SetResult(&params).
		Post("/api/user/register")
	if err != nil {
		return models.UserParams{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserParams{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.UserParams{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return params, nil
}

// RequestParams implements [ServerAdapter]. GET /api/user/params?email=.
func (h *httpServerAdapter) RequestParams(ctx context.Context, email string) (models.UserParams, error) {
	var params models.UserParams

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		SetResult(&params).
		Get("/api/user/params")
	if err != nil {
		return models.UserParams{}, fmt.Errorf("params request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserParams{}, err
	}

	return params, nil
}

// Login implements [ServerAdapter]. POST /api/user/login.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// AddContact implements [ServerAdapter]. POST /api/trusted-contacts.
func (h *httpServerAdapter) AddContact(ctx context.Context, contact models.NewTrustedContact) (models.ContactInvitation, error) {
	var invitation models.ContactInvitation

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ContactInvitation{}, err
	}
	resp, err := req.SetBody(contact).SetResult(&invitation).Post("/api/trusted-contacts")
	if err != nil {
		return models.ContactInvitation{}, fmt.Errorf("add contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContactInvitation{}, err
	}

	return invitation, nil
}

// GetContact implements [ServerAdapter]. GET /api/trusted-contacts.
func (h *httpServerAdapter) GetContact(ctx context.Context) (models.TrustedContact, error) {
	var contact models.TrustedContact

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.TrustedContact{}, err
	}
	resp, err := req.SetResult(&contact).Get("/api/trusted-contacts")
	if err != nil {
		return models.TrustedContact{}, fmt.Errorf("get contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TrustedContact{}, err
	}

	return contact, nil
}

// RevokeContact implements [ServerAdapter]. DELETE /api/trusted-contacts/{id}.
func (h *httpServerAdapter) RevokeContact(ctx context.Context, contactID int64) (models.TrustedContact, error) {
	var contact models.TrustedContact

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.TrustedContact{}, err
	}
	resp, err := req.
		SetPathParam("contactID", formatID(contactID)).
		SetResult(&contact).
		Delete("/api/trusted-contacts/{contactID}")
	if err != nil {
		return models.TrustedContact{}, fmt.Errorf("revoke contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TrustedContact{}, err
	}

	return contact, nil
}

// ResetInactivity implements [ServerAdapter].
// POST /api/trusted-contacts/{id}/reset-inactivity.
func (h *httpServerAdapter) ResetInactivity(ctx context.Context, contactID int64) (models.TrustedContact, error) {
	var contact models.TrustedContact

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.TrustedContact{}, err
	}
	resp, err := req.
		SetPathParam("contactID", formatID(contactID)).
		SetResult(&contact).
		Post("/api/trusted-contacts/{contactID}/reset-inactivity")
	if err != nil {
		return models.TrustedContact{}, fmt.Errorf("reset inactivity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TrustedContact{}, err
	}

	return contact, nil
}

// ListAccessRequests implements [ServerAdapter]. GET /api/access-requests
// or /api/access-requests/pending.
func (h *httpServerAdapter) ListAccessRequests(ctx context.Context, pendingOnly bool) ([]models.AccessRequest, error) {
	var requests []models.AccessRequest

	path := "/api/access-requests"
	if pendingOnly {
		path += "/pending"
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := req.SetResult(&requests).Get(path)
	if err != nil {
		return nil, fmt.Errorf("list access requests request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return requests, nil
}

// Respond implements [ServerAdapter].
// POST /api/access-requests/{id}/respond.
func (h *httpServerAdapter) Respond(ctx context.Context, requestID int64, input models.ResponseInput) (models.AccessRequest, error) {
	var request models.AccessRequest

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.AccessRequest{}, err
	}
	resp, err := req.
		SetPathParam("requestID", formatID(requestID)).
		SetBody(input).
		SetResult(&request).
		Post("/api/access-requests/{requestID}/respond")
	if err != nil {
		return models.AccessRequest{}, fmt.Errorf("respond request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessRequest{}, err
	}

	return request, nil
}

// DepositKeyWrap implements [ServerAdapter].
// POST /api/access-requests/{id}/key-wrap.
func (h *httpServerAdapter) DepositKeyWrap(ctx context.Context, requestID int64, wrappedKey string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetPathParam("requestID", formatID(requestID)).
		SetBody(models.KeyWrapInput{WrappedKey: wrappedKey}).
		Post("/api/access-requests/{requestID}/key-wrap")
	if err != nil {
		return fmt.Errorf("key wrap request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateEntry implements [ServerAdapter]. POST /api/entries.
func (h *httpServerAdapter) CreateEntry(ctx context.Context, entry models.NewVaultEntry) (models.VaultEntry, error) {
	var created models.VaultEntry

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.VaultEntry{}, err
	}
	resp, err := req.SetBody(entry).SetResult(&created).Post("/api/entries")
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultEntry{}, err
	}

	return created, nil
}

// ListEntries implements [ServerAdapter]. GET /api/entries.
func (h *httpServerAdapter) ListEntries(ctx context.Context) ([]models.VaultEntry, error) {
	var entries []models.VaultEntry

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := req.SetResult(&entries).Get("/api/entries")
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

// SetEmergencyAccess implements [ServerAdapter].
// PUT /api/entries/{id}/emergency-access.
func (h *httpServerAdapter) SetEmergencyAccess(ctx context.Context, entryID int64, allow bool) (models.VaultEntry, error) {
	var entry models.VaultEntry

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.VaultEntry{}, err
	}
	resp, err := req.
		SetPathParam("entryID", formatID(entryID)).
		SetBody(models.EmergencyAccessFlag{Allow: allow}).
		SetResult(&entry).
		Put("/api/entries/{entryID}/emergency-access")
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("set emergency access request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultEntry{}, err
	}

	return entry, nil
}

// ListActivity implements [ServerAdapter]. GET /api/activity?limit=.
func (h *httpServerAdapter) ListActivity(ctx context.Context, limit uint) ([]models.ActivityEntry, error) {
	var activity []models.ActivityEntry

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(uint64(limit), 10))
	}
	resp, err := req.SetResult(&activity).Get("/api/activity")
	if err != nil {
		return nil, fmt.Errorf("list activity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return activity, nil
}

// AnswerInvitation implements [ServerAdapter].
// POST /api/trusted-contacts/invitation.
func (h *httpServerAdapter) AnswerInvitation(ctx context.Context, answer models.InvitationAnswer) (models.TrustedContact, error) {
	var contact models.TrustedContact

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(answer).
		SetResult(&contact).
		Post("/api/trusted-contacts/invitation")
	if err != nil {
		return models.TrustedContact{}, fmt.Errorf("answer invitation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TrustedContact{}, err
	}

	return contact, nil
}

// SubmitAccessRequest implements [ServerAdapter].
// POST /api/emergency-access-request.
func (h *httpServerAdapter) SubmitAccessRequest(ctx context.Context, input models.EmergencyAccessInput) (models.AccessRequest, error) {
	var request models.AccessRequest

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&request).
		Post("/api/emergency-access-request")
	if err != nil {
		return models.AccessRequest{}, fmt.Errorf("submit access request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessRequest{}, err
	}

	return request, nil
}

// RequestStatus implements [ServerAdapter].
// GET /api/emergency-access-request/{id}/status?email=.
func (h *httpServerAdapter) RequestStatus(ctx context.Context, requestID int64, contactEmail string) (models.RequestStatusView, error) {
	var status models.RequestStatusView

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("requestID", formatID(requestID)).
		SetQueryParam("email", contactEmail).
		SetResult(&status).
		Get("/api/emergency-access-request/{requestID}/status")
	if err != nil {
		return models.RequestStatusView{}, fmt.Errorf("request status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RequestStatusView{}, err
	}

	return status, nil
}

// VerifyAccessToken implements [ServerAdapter].
// POST /api/emergency-access/verify.
func (h *httpServerAdapter) VerifyAccessToken(ctx context.Context, token string) (models.TokenVerification, error) {
	var verification models.TokenVerification

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.VerifyTokenInput{Token: token}).
		SetResult(&verification).
		Post("/api/emergency-access/verify")
	if err != nil {
		return models.TokenVerification{}, fmt.Errorf("verify token request: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return models.TokenVerification{Valid: false}, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenVerification{}, err
	}

	return verification, nil
}

// EmergencyEntries implements [ServerAdapter].
// GET /api/emergency-access/{ownerID}/entries with the access token as the
// bearer credential.
func (h *httpServerAdapter) EmergencyEntries(ctx context.Context, ownerID int64, token string) (models.EmergencyEntries, error) {
	var entries models.EmergencyEntries

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(strings.TrimSpace(token)).
		SetPathParam("ownerID", formatID(ownerID)).
		SetResult(&entries).
		Get("/api/emergency-access/{ownerID}/entries")
	if err != nil {
		return models.EmergencyEntries{}, fmt.Errorf("emergency entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EmergencyEntries{}, err
	}

	return entries, nil
}

// ServerVersion implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (models.BuildInfo, error) {
	var info models.BuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.BuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BuildInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
