// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/config"
	"github.com/MKhiriev/vaultkeeper/internal/crypto"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/notify"
	"github.com/MKhiriev/vaultkeeper/internal/store"
	"github.com/MKhiriev/vaultkeeper/internal/utils"
	"github.com/MKhiriev/vaultkeeper/internal/validators"
	"github.com/MKhiriev/vaultkeeper/models"
)

const (
	accessTokenSize = 32
	expiredMessage  = "trusted contact is no longer active"
)

// accessRequestService is the access request state machine.
//
// Every transition out of pending goes through
// store.AccessRequestRepository.ResolveRequest, which only updates a row
// that is still pending. When an owner's answer and the auto-approval sweep
// race on the same request, one of them commits and the other observes
// store.ErrRequestNotPending. A token is generated before the write and
// simply discarded by the losing side, so exactly one token is ever stored.
type accessRequestService struct {
	requests store.AccessRequestRepository
	contacts store.TrustedContactRepository
	users    store.UserRepository
	keyWraps store.KeyWrapStore

	effects sideEffects

	// accessWindow is how long an approved request stays usable.
	accessWindow time.Duration

	validator validators.Validator

	now    func() time.Time
	logger *logger.Logger
}

func NewAccessRequestService(storages *store.Storages, sink notify.Sink, cfg config.App, logger *logger.Logger) AccessRequestService {
	return &accessRequestService{
		requests:     storages.AccessRequestRepository,
		contacts:     storages.TrustedContactRepository,
		users:        storages.UserRepository,
		keyWraps:     storages.KeyWrapStore,
		effects:      sideEffects{activity: storages.ActivityRepository, sink: sink},
		accessWindow: cfg.AccessWindow,
		validator:    validators.NewEmergencyValidator(),
		now:          time.Now,
		logger:       logger,
	}
}

// Create raises a pending request for an active contact. The auto-approve
// deadline is fixed here and never recomputed.
func (s *accessRequestService) Create(ctx context.Context, input models.NewAccessRequest) (models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	contact, err := s.contacts.FindContactByID(ctx, input.ContactID)
	if errors.Is(err, store.ErrContactNotFound) {
		return models.AccessRequest{}, ErrNotATrustedContact
	}
	if err != nil {
		return models.AccessRequest{}, fmt.Errorf("error loading trusted contact: %w", err)
	}
	if contact.Status != models.ContactActive {
		return models.AccessRequest{}, ErrNotATrustedContact
	}

	requestedAt := input.RequestedAt
	if requestedAt.IsZero() {
		requestedAt = s.now()
	}
	origin := input.Origin
	if origin == "" {
		origin = models.OriginContact
	}

	created, err := s.requests.CreateRequest(ctx, models.AccessRequest{
		ContactID:     contact.ID,
		Reason:        strings.TrimSpace(input.Reason),
		Origin:        origin,
		Status:        models.RequestPending,
		RequestedAt:   requestedAt,
		AutoApproveAt: requestedAt.Add(contact.WaitingPeriod.Duration()),
	})
	if errors.Is(err, store.ErrPendingRequestExists) {
		return models.AccessRequest{}, ErrDuplicatePendingRequest
	}
	if errors.Is(err, store.ErrContactNotFound) {
		return models.AccessRequest{}, ErrNotATrustedContact
	}
	if err != nil {
		log.Err(err).Int64("contact_id", contact.ID).Msg("error creating access request")
		return models.AccessRequest{}, fmt.Errorf("error creating access request: %w", err)
	}

	log.Info().
		Int64("request_id", created.ID).
		Int64("contact_id", contact.ID).
		Str("origin", string(origin)).
		Time("auto_approve_at", created.AutoApproveAt).
		Msg("access request created")

	actor := models.ActorContact
	if origin == models.OriginInactivity {
		actor = models.ActorSystem
	}
	s.effects.audit(ctx, requestActivity(created, models.ActivityRequestCreated, actor, created.Reason, requestedAt))

	if owner, err := s.users.FindUserByID(ctx, contact.UserID); err == nil {
		s.effects.notify(ctx, models.AccessRequested{
			Recipient:     ownerRecipient(owner),
			RequestID:     created.ID,
			ContactName:   contact.Name,
			Reason:        created.Reason,
			Origin:        created.Origin,
			AutoApproveAt: created.AutoApproveAt,
		})
	} else {
		log.Warn().Err(err).Int64("owner_id", contact.UserID).Msg("owner not notified about access request")
	}

	return created, nil
}

// SubmitByEmail resolves the owner by email and checks that the caller is
// the owner's active contact before creating the request.
func (s *accessRequestService) SubmitByEmail(ctx context.Context, input models.EmergencyAccessInput) (models.AccessRequest, error) {
	ownerEmail := strings.TrimSpace(input.OwnerEmail)
	contactEmail := strings.TrimSpace(input.ContactEmail)
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.AccessRequest{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	owner, err := s.users.FindUserByEmail(ctx, ownerEmail)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.AccessRequest{}, ErrOwnerNotFound
	}
	if err != nil {
		return models.AccessRequest{}, fmt.Errorf("error loading owner: %w", err)
	}

	contact, err := s.contacts.FindCurrentContact(ctx, owner.UserID)
	if errors.Is(err, store.ErrContactNotFound) {
		return models.AccessRequest{}, ErrNotATrustedContact
	}
	if err != nil {
		return models.AccessRequest{}, fmt.Errorf("error loading trusted contact: %w", err)
	}
	if !strings.EqualFold(contact.Email, contactEmail) || contact.Status != models.ContactActive {
		logger.FromContext(ctx).Warn().Int64("owner_id", owner.UserID).Msg("access requested by someone who is not the trusted contact")
		return models.AccessRequest{}, ErrNotATrustedContact
	}

	return s.Create(ctx, models.NewAccessRequest{
		ContactID: contact.ID,
		Reason:    input.Reason,
		Origin:    models.OriginContact,
	})
}

// Respond applies the owner's decision to a pending request.
func (s *accessRequestService) Respond(ctx context.Context, requestID, ownerID int64, input models.ResponseInput) (models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		return models.AccessRequest{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	req, err := s.requests.FindRequestByID(ctx, requestID)
	if errors.Is(err, store.ErrRequestNotFound) {
		return models.AccessRequest{}, ErrNotFound
	}
	if err != nil {
		return models.AccessRequest{}, fmt.Errorf("error loading access request: %w", err)
	}
	if req.OwnerID != ownerID {
		log.Warn().Int64("owner_id", ownerID).Int64("request_id", requestID).Msg("owner tried to answer a request of another owner")
		return models.AccessRequest{}, ErrForbidden
	}
	if req.Status != models.RequestPending {
		return models.AccessRequest{}, ErrAlreadyResolved
	}

	contact, err := s.contacts.FindContactByID(ctx, req.ContactID)
	if err != nil {
		return models.AccessRequest{}, fmt.Errorf("error loading trusted contact: %w", err)
	}

	now := s.now()
	var token string
	resolution := models.RequestResolution{
		RequestID:       req.ID,
		Status:          models.RequestDenied,
		RespondedAt:     now,
		ResponseMessage: strings.TrimSpace(input.Message),
		ResolvedBy:      models.ResolvedByOwner,
	}
	if input.Decision == models.DecisionApprove {
		if token, err = s.approve(ctx, &resolution, contact, now); err != nil {
			return models.AccessRequest{}, err
		}
	}

	resolved, err := s.requests.ResolveRequest(ctx, resolution)
	if errors.Is(err, store.ErrRequestNotPending) {
		log.Info().Int64("request_id", req.ID).Msg("request was resolved concurrently, owner answer ignored")
		return models.AccessRequest{}, ErrAlreadyResolved
	}
	if err != nil {
		log.Err(err).Int64("request_id", req.ID).Msg("error resolving access request")
		return models.AccessRequest{}, fmt.Errorf("error resolving access request: %w", err)
	}
	resolved.AccessToken = token

	log.Info().Int64("request_id", resolved.ID).Str("status", string(resolved.Status)).Msg("access request answered by owner")

	if resolved.Status == models.RequestApproved {
		s.effects.audit(ctx, requestActivity(resolved, models.ActivityRequestApproved, models.ActorOwner, resolved.ResponseMessage, now))
		s.effects.notify(ctx, models.AccessGranted{
			Recipient:   contactRecipient(contact),
			RequestID:   resolved.ID,
			OwnerID:     resolved.OwnerID,
			AccessToken: token,
			ExpiresAt:   *resolved.ExpiresAt,
		})
	} else {
		s.dropKeyWrap(ctx, resolved.ID)
		s.effects.audit(ctx, requestActivity(resolved, models.ActivityRequestDenied, models.ActorOwner, resolved.ResponseMessage, now))
		s.effects.notify(ctx, models.AccessDenied{
			Recipient: contactRecipient(contact),
			RequestID: resolved.ID,
			Message:   resolved.ResponseMessage,
		})
	}

	return resolved, nil
}

// ResolveAutoApprovals approves every pending request whose deadline has
// passed, or expires it when its contact is no longer active. A failure
// on one request is logged and does not stop the others.
func (s *accessRequestService) ResolveAutoApprovals(ctx context.Context, now time.Time) ([]models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	due, err := s.requests.ListDueRequests(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("error listing due access requests: %w", err)
	}

	resolved := make([]models.AccessRequest, 0, len(due))
	for _, req := range due {
		r, ok, err := s.resolveDue(ctx, req, now)
		if err != nil {
			log.Err(err).Int64("request_id", req.ID).Msg("error resolving due access request")
			continue
		}
		if ok {
			resolved = append(resolved, r)
		}
	}

	if len(due) > 0 {
		log.Info().Int("due", len(due)).Int("resolved", len(resolved)).Msg("auto-approval sweep finished")
	}

	return resolved, nil
}

func (s *accessRequestService) resolveDue(ctx context.Context, req models.AccessRequest, now time.Time) (models.AccessRequest, bool, error) {
	contact, err := s.contacts.FindContactByID(ctx, req.ContactID)
	if err != nil {
		return models.AccessRequest{}, false, fmt.Errorf("error loading trusted contact: %w", err)
	}

	var token string
	resolution := models.RequestResolution{
		RequestID:       req.ID,
		Status:          models.RequestExpired,
		RespondedAt:     now,
		ResponseMessage: expiredMessage,
		ResolvedBy:      models.ResolvedBySystem,
	}
	if contact.Status == models.ContactActive {
		resolution.ResponseMessage = models.AutoApprovalMessage
		if token, err = s.approve(ctx, &resolution, contact, now); err != nil {
			return models.AccessRequest{}, false, err
		}
	}

	resolved, err := s.requests.ResolveRequest(ctx, resolution)
	if errors.Is(err, store.ErrRequestNotPending) {
		logger.FromContext(ctx).Info().Int64("request_id", req.ID).Msg("request was resolved concurrently, skipping")
		return models.AccessRequest{}, false, nil
	}
	if err != nil {
		return models.AccessRequest{}, false, fmt.Errorf("error resolving access request: %w", err)
	}
	resolved.AccessToken = token

	if resolved.Status == models.RequestExpired {
		s.dropKeyWrap(ctx, resolved.ID)
		s.effects.audit(ctx, requestActivity(resolved, models.ActivityRequestExpired, models.ActorSystem, expiredMessage, now))
		s.effects.notify(ctx, models.AccessExpired{Recipient: contactRecipient(contact), RequestID: resolved.ID})
		return resolved, true, nil
	}

	s.effects.audit(ctx, requestActivity(resolved, models.ActivityRequestAutoApproved, models.ActorSystem, models.AutoApprovalMessage, now))
	s.effects.notify(ctx, models.AccessGranted{
		Recipient:    contactRecipient(contact),
		RequestID:    resolved.ID,
		OwnerID:      resolved.OwnerID,
		AccessToken:  token,
		ExpiresAt:    *resolved.ExpiresAt,
		AutoApproved: true,
	})
	if owner, err := s.users.FindUserByID(ctx, resolved.OwnerID); err == nil {
		s.effects.notify(ctx, models.AutoApprovalNotice{
			Recipient:   ownerRecipient(owner),
			RequestID:   resolved.ID,
			ContactName: contact.Name,
			ExpiresAt:   *resolved.ExpiresAt,
		})
	}

	return resolved, true, nil
}

// approve turns resolution into an approval and returns the raw token.
// Storage gets the digest of the token and a copy sealed for the contact's
// public key, which the contact collects through Status. A contact without
// a usable key only receives the token by notification.
func (s *accessRequestService) approve(ctx context.Context, resolution *models.RequestResolution, contact models.TrustedContact, now time.Time) (string, error) {
	token, err := utils.NewOpaqueToken(accessTokenSize)
	if err != nil {
		return "", fmt.Errorf("error generating access token: %w", err)
	}

	digest := utils.Digest(token)
	expiresAt := now.Add(s.accessWindow)

	resolution.Status = models.RequestApproved
	resolution.ExpiresAt = &expiresAt
	resolution.AccessTokenHash = &digest

	if sealed, err := sealToken(token, contact.PublicKey); err == nil {
		resolution.SealedToken = &sealed
	} else {
		logger.FromContext(ctx).Warn().Err(err).
			Int64("request_id", resolution.RequestID).
			Int64("contact_id", contact.ID).
			Msg("access token not sealed, it is only delivered by notification")
	}

	return token, nil
}

func sealToken(token, publicKey string) (string, error) {
	if publicKey == "" {
		return "", ErrNoPublicKey
	}

	pub, err := crypto.ParsePublicKey(publicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	return crypto.SealToken(token, pub)
}

// VerifyToken checks that the token belongs to an approved request whose
// window is still open and whose contact is still active. Any other case,
// including storage errors, yields Valid=false. Every check is audited.
func (s *accessRequestService) VerifyToken(ctx context.Context, token string) (models.TokenVerification, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(token) == "" {
		log.Warn().Msg("empty access token rejected")
		return models.TokenVerification{}, nil
	}

	req, err := s.requests.FindRequestByTokenHash(ctx, utils.Digest(token))
	if errors.Is(err, store.ErrRequestNotFound) {
		log.Warn().Msg("unknown access token rejected")
		return models.TokenVerification{}, nil
	}
	if err != nil {
		log.Err(err).Msg("access token could not be checked")
		return models.TokenVerification{}, fmt.Errorf("error loading access request: %w", err)
	}

	now := s.now()
	reason := ""
	switch {
	case req.Status != models.RequestApproved:
		reason = "request is " + string(req.Status)
	case req.ExpiresAt == nil || now.After(*req.ExpiresAt):
		reason = "access window has ended"
	}

	if reason == "" {
		contact, err := s.contacts.FindContactByID(ctx, req.ContactID)
		switch {
		case err != nil:
			log.Err(err).Int64("request_id", req.ID).Msg("access token could not be checked")
			return models.TokenVerification{}, fmt.Errorf("error loading trusted contact: %w", err)
		case contact.Status != models.ContactActive:
			reason = "trusted contact is " + string(contact.Status)
		}
	}

	if reason != "" {
		log.Warn().Int64("request_id", req.ID).Str("reason", reason).Msg("access token rejected")
		s.effects.audit(ctx, requestActivity(req, models.ActivityTokenRejected, models.ActorContact, reason, now))
		return models.TokenVerification{}, nil
	}

	log.Info().Int64("request_id", req.ID).Int64("owner_id", req.OwnerID).Msg("access token verified")
	s.effects.audit(ctx, requestActivity(req, models.ActivityTokenVerified, models.ActorContact, "", now))

	return models.TokenVerification{
		Valid:     true,
		RequestID: req.ID,
		ContactID: req.ContactID,
		OwnerID:   req.OwnerID,
		ExpiresAt: req.ExpiresAt,
	}, nil
}

// Status is the coarse view a contact gets of their own request. A
// request of a different contact is reported as not found.
func (s *accessRequestService) Status(ctx context.Context, requestID int64, contactEmail string) (models.RequestStatusView, error) {
	req, err := s.requests.FindRequestByID(ctx, requestID)
	if errors.Is(err, store.ErrRequestNotFound) {
		return models.RequestStatusView{}, ErrNotFound
	}
	if err != nil {
		return models.RequestStatusView{}, fmt.Errorf("error loading access request: %w", err)
	}

	contact, err := s.contacts.FindContactByID(ctx, req.ContactID)
	if err != nil || !strings.EqualFold(contact.Email, strings.TrimSpace(contactEmail)) {
		return models.RequestStatusView{}, ErrNotFound
	}

	view := models.RequestStatusView{
		RequestID:     req.ID,
		Status:        req.Status,
		AutoApproveAt: req.AutoApproveAt,
		ExpiresAt:     req.ExpiresAt,
	}
	now := s.now()
	switch req.Status {
	case models.RequestPending:
		if left := req.AutoApproveAt.Sub(now); left > 0 {
			view.SecondsUntilAutoApproval = int64(left.Seconds())
		}
	case models.RequestApproved:
		if req.SealedToken != nil && req.ExpiresAt != nil && !now.After(*req.ExpiresAt) && contact.Status == models.ContactActive {
			view.SealedAccessToken = *req.SealedToken
		}
	}

	return view, nil
}

func (s *accessRequestService) ListForOwner(ctx context.Context, ownerID int64, pendingOnly bool) ([]models.AccessRequest, error) {
	var statuses []models.RequestStatus
	if pendingOnly {
		statuses = append(statuses, models.RequestPending)
	}

	requests, err := s.requests.ListRequestsByOwner(ctx, ownerID, statuses...)
	if err != nil {
		return nil, fmt.Errorf("error listing access requests: %w", err)
	}

	return requests, nil
}

// DepositKeyWrap stores the owner's vault key wrapped for the contact. The
// blob lives until the access window of the request can no longer be
// open: the expiry of an approved request, or the auto-approve deadline
// plus the window for a pending one.
func (s *accessRequestService) DepositKeyWrap(ctx context.Context, ownerID, requestID int64, wrappedKey string) error {
	if err := s.validator.Validate(ctx, models.KeyWrapInput{WrappedKey: wrappedKey}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	req, err := s.requests.FindRequestByID(ctx, requestID)
	if errors.Is(err, store.ErrRequestNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("error loading access request: %w", err)
	}
	if req.OwnerID != ownerID {
		return ErrForbidden
	}

	now := s.now()
	var ttl time.Duration
	switch req.Status {
	case models.RequestPending:
		ttl = req.AutoApproveAt.Sub(now) + s.accessWindow
		if ttl < s.accessWindow {
			ttl = s.accessWindow
		}
	case models.RequestApproved:
		if req.ExpiresAt == nil || !now.Before(*req.ExpiresAt) {
			return ErrAlreadyResolved
		}
		ttl = req.ExpiresAt.Sub(now)
	default:
		return ErrAlreadyResolved
	}

	if err = s.keyWraps.PutKeyWrap(ctx, req.ID, wrappedKey, ttl); err != nil {
		return fmt.Errorf("error storing wrapped key: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("request_id", req.ID).Dur("ttl", ttl).Msg("wrapped key deposited")
	return nil
}

func (s *accessRequestService) dropKeyWrap(ctx context.Context, requestID int64) {
	if err := s.keyWraps.DeleteKeyWrap(ctx, requestID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("request_id", requestID).Msg("error deleting wrapped key")
	}
}
