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
	invitationCodeSize = 24
	revokeMessage      = "trusted contact was revoked by the owner"
)

// trustedContactRegistry implements TrustedContactRegistry.
//
// The one-contact-per-owner rule is enforced by storage; this layer turns
// the storage conflict into ErrAlreadyHasContact.
type trustedContactRegistry struct {
	contacts store.TrustedContactRepository
	users    store.UserRepository
	requests store.AccessRequestRepository
	keyWraps store.KeyWrapStore

	effects sideEffects

	defaultWaitingPeriod    models.Period
	defaultInactivityPeriod models.Period

	validator validators.Validator

	now    func() time.Time
	logger *logger.Logger
}

func NewTrustedContactRegistry(storages *store.Storages, sink notify.Sink, cfg config.App, logger *logger.Logger) TrustedContactRegistry {
	return &trustedContactRegistry{
		contacts:                storages.TrustedContactRepository,
		users:                   storages.UserRepository,
		requests:                storages.AccessRequestRepository,
		keyWraps:                storages.KeyWrapStore,
		effects:                 sideEffects{activity: storages.ActivityRepository, sink: sink},
		defaultWaitingPeriod:    models.ParsePeriod(cfg.DefaultWaitingPeriod),
		defaultInactivityPeriod: models.ParsePeriod(cfg.DefaultInactivityPeriod),
		validator:               validators.NewEmergencyValidator(),
		now:                     time.Now,
		logger:                  logger,
	}
}

// AddContact designates a pending trusted contact and sends the contact a
// one-time invitation code. Only a digest of the code is stored.
func (r *trustedContactRegistry) AddContact(ctx context.Context, ownerID int64, input models.NewTrustedContact) (models.ContactInvitation, error) {
	log := logger.FromContext(ctx)

	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := r.validator.Validate(ctx, input); err != nil {
		log.Warn().Err(err).Int64("owner_id", ownerID).Msg("invalid trusted contact")
		return models.ContactInvitation{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if input.AccessLevel == "" {
		input.AccessLevel = models.AccessLevelView
	}
	if input.WaitingPeriod.IsZero() {
		input.WaitingPeriod = r.defaultWaitingPeriod
	}
	if input.InactivityPeriod.IsZero() {
		input.InactivityPeriod = r.defaultInactivityPeriod
	}

	owner, err := r.users.FindUserByID(ctx, ownerID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.ContactInvitation{}, ErrOwnerNotFound
	}
	if err != nil {
		return models.ContactInvitation{}, fmt.Errorf("error loading owner: %w", err)
	}
	if strings.EqualFold(owner.Email, input.Email) {
		return models.ContactInvitation{}, ErrInvalidDataProvided
	}

	code, err := utils.NewOpaqueToken(invitationCodeSize)
	if err != nil {
		return models.ContactInvitation{}, fmt.Errorf("error generating invitation code: %w", err)
	}

	now := r.now()
	contact, err := r.contacts.CreateContact(ctx, models.TrustedContact{
		UserID:                  ownerID,
		Name:                    input.Name,
		Email:                   input.Email,
		Status:                  models.ContactPending,
		AccessLevel:             input.AccessLevel,
		WaitingPeriod:           input.WaitingPeriod,
		InactivityPeriod:        input.InactivityPeriod,
		LastInactivityResetDate: now,
		InvitationHash:          utils.Digest(code),
		CreatedAt:               now,
	})
	if errors.Is(err, store.ErrContactAlreadyExists) {
		return models.ContactInvitation{}, ErrAlreadyHasContact
	}
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("error creating trusted contact")
		return models.ContactInvitation{}, fmt.Errorf("error creating trusted contact: %w", err)
	}

	log.Info().Int64("owner_id", ownerID).Int64("contact_id", contact.ID).Msg("trusted contact added")

	r.effects.audit(ctx, contactActivity(contact, models.ActivityContactAdded, models.ActorOwner, now))
	r.effects.notify(ctx, models.ContactInvited{
		Recipient:      contactRecipient(contact),
		OwnerName:      owner.Name,
		OwnerEmail:     owner.Email,
		InvitationCode: code,
	})

	return models.ContactInvitation{Contact: contact, InvitationCode: code}, nil
}

func (r *trustedContactRegistry) GetContact(ctx context.Context, ownerID int64) (models.TrustedContact, error) {
	contact, err := r.contacts.FindCurrentContact(ctx, ownerID)
	if errors.Is(err, store.ErrContactNotFound) {
		return models.TrustedContact{}, ErrNotFound
	}
	if err != nil {
		return models.TrustedContact{}, fmt.Errorf("error loading trusted contact: %w", err)
	}

	return contact, nil
}

// AnswerInvitation accepts or declines an invitation. Accepting requires a
// valid RSA public key, which the owner later wraps the vault key for. The
// inactivity window starts over on acceptance.
func (r *trustedContactRegistry) AnswerInvitation(ctx context.Context, answer models.InvitationAnswer) (models.TrustedContact, error) {
	log := logger.FromContext(ctx)

	if answer.Code == "" {
		return models.TrustedContact{}, ErrInvalidInvitation
	}

	status := models.ContactDeclined
	publicKey := ""
	if answer.Accept {
		if _, err := crypto.ParsePublicKey(answer.PublicKey); err != nil {
			log.Warn().Err(err).Msg("invitation answered with an invalid public key")
			return models.TrustedContact{}, ErrInvalidPublicKey
		}
		status = models.ContactActive
		publicKey = answer.PublicKey
	}

	contact, err := r.contacts.FindContactByInvitation(ctx, utils.Digest(answer.Code))
	if errors.Is(err, store.ErrContactNotFound) {
		return models.TrustedContact{}, ErrInvalidInvitation
	}
	if err != nil {
		return models.TrustedContact{}, fmt.Errorf("error loading invitation: %w", err)
	}

	now := r.now()
	contact, err = r.contacts.AnswerInvitation(ctx, contact.ID, status, publicKey, now)
	if errors.Is(err, store.ErrContactStateConflict) {
		return models.TrustedContact{}, ErrInvalidInvitation
	}
	if err != nil {
		return models.TrustedContact{}, fmt.Errorf("error answering invitation: %w", err)
	}

	log.Info().Int64("contact_id", contact.ID).Str("status", string(contact.Status)).Msg("invitation answered")

	action := models.ActivityContactDeclined
	if contact.Status == models.ContactActive {
		action = models.ActivityContactAccepted
	}
	r.effects.audit(ctx, contactActivity(contact, action, models.ActorContact, now))

	if owner, err := r.users.FindUserByID(ctx, contact.UserID); err == nil {
		r.effects.notify(ctx, models.ContactAnswered{
			Recipient:    ownerRecipient(owner),
			ContactID:    contact.ID,
			ContactName:  contact.Name,
			ContactState: contact.Status,
		})
	} else {
		log.Warn().Err(err).Int64("owner_id", contact.UserID).Msg("owner not notified about invitation answer")
	}

	return contact, nil
}

// ResetInactivity is the owner's manual "I am still here".
func (r *trustedContactRegistry) ResetInactivity(ctx context.Context, ownerID, contactID int64) (models.TrustedContact, error) {
	contact, err := r.ownedContact(ctx, ownerID, contactID)
	if err != nil {
		return models.TrustedContact{}, err
	}

	now := r.now()
	contact, err = r.contacts.ResetInactivity(ctx, contact.ID, now)
	if errors.Is(err, store.ErrContactStateConflict) {
		return models.TrustedContact{}, ErrContactNotCurrent
	}
	if err != nil {
		return models.TrustedContact{}, fmt.Errorf("error resetting inactivity: %w", err)
	}

	r.effects.audit(ctx, contactActivity(contact, models.ActivityInactivityReset, models.ActorOwner, now))

	return contact, nil
}

func (r *trustedContactRegistry) ResetInactivityForOwner(ctx context.Context, ownerID int64) error {
	if err := r.contacts.ResetInactivityForOwner(ctx, ownerID, r.now()); err != nil {
		return fmt.Errorf("error resetting inactivity: %w", err)
	}

	return nil
}

// Revoke withdraws the contact. Pending requests are denied in the same
// transaction and every wrapped key deposited for the contact is dropped,
// so tokens issued earlier stop working too.
func (r *trustedContactRegistry) Revoke(ctx context.Context, ownerID, contactID int64) (models.TrustedContact, error) {
	log := logger.FromContext(ctx)

	contact, err := r.ownedContact(ctx, ownerID, contactID)
	if err != nil {
		return models.TrustedContact{}, err
	}
	if !contact.Status.IsCurrent() {
		return models.TrustedContact{}, ErrContactNotCurrent
	}

	now := r.now()
	revoked, denied, err := r.contacts.RevokeContact(ctx, contact.ID, now, revokeMessage)
	if errors.Is(err, store.ErrContactStateConflict) {
		return models.TrustedContact{}, ErrContactNotCurrent
	}
	if err != nil {
		log.Err(err).Int64("contact_id", contact.ID).Msg("error revoking trusted contact")
		return models.TrustedContact{}, fmt.Errorf("error revoking trusted contact: %w", err)
	}

	log.Info().Int64("contact_id", contact.ID).Int("denied_requests", len(denied)).Msg("trusted contact revoked")

	r.dropKeyWraps(ctx, ownerID, contact.ID, denied)

	r.effects.audit(ctx, contactActivity(revoked, models.ActivityContactRevoked, models.ActorOwner, now))
	for _, req := range denied {
		r.effects.audit(ctx, requestActivity(req, models.ActivityRequestDenied, models.ActorOwner, revokeMessage, now))
	}

	owner, err := r.users.FindUserByID(ctx, ownerID)
	if err != nil {
		log.Warn().Err(err).Int64("owner_id", ownerID).Msg("contact not notified about revocation")
		return revoked, nil
	}
	r.effects.notify(ctx, models.ContactRevokedNotice{Recipient: contactRecipient(revoked), OwnerEmail: owner.Email})

	return revoked, nil
}

func (r *trustedContactRegistry) dropKeyWraps(ctx context.Context, ownerID, contactID int64, denied []models.AccessRequest) {
	log := logger.FromContext(ctx)

	ids := make([]int64, 0, len(denied))
	for _, req := range denied {
		ids = append(ids, req.ID)
	}

	approved, err := r.requests.ListRequestsByOwner(ctx, ownerID, models.RequestApproved)
	if err != nil {
		log.Warn().Err(err).Msg("approved requests not loaded, their wrapped keys expire on their own")
	}
	for _, req := range approved {
		if req.ContactID == contactID {
			ids = append(ids, req.ID)
		}
	}

	for _, id := range ids {
		if err = r.keyWraps.DeleteKeyWrap(ctx, id); err != nil {
			log.Warn().Err(err).Int64("request_id", id).Msg("error deleting wrapped key")
		}
	}
}

func (r *trustedContactRegistry) ownedContact(ctx context.Context, ownerID, contactID int64) (models.TrustedContact, error) {
	contact, err := r.contacts.FindContactByID(ctx, contactID)
	if errors.Is(err, store.ErrContactNotFound) {
		return models.TrustedContact{}, ErrNotFound
	}
	if err != nil {
		return models.TrustedContact{}, fmt.Errorf("error loading trusted contact: %w", err)
	}

	if contact.UserID != ownerID {
		logger.FromContext(ctx).Warn().
			Int64("owner_id", ownerID).
			Int64("contact_id", contactID).
			Msg("owner tried to act on a contact of another owner")
		return models.TrustedContact{}, ErrForbidden
	}

	return contact, nil
}
