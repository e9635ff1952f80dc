// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/store"
	"github.com/MKhiriev/vaultkeeper/models"
)

// memStore is an in-memory stand-in for the Postgres repositories with the
// same conditional update semantics. Scenario tests run the real services
// on top of it.
type memStore struct {
	mu sync.Mutex

	users    map[int64]models.User
	contacts map[int64]models.TrustedContact
	requests map[int64]models.AccessRequest
	entries  map[int64]models.VaultEntry
	activity []models.ActivityEntry

	nextID int64
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[int64]models.User),
		contacts: make(map[int64]models.TrustedContact),
		requests: make(map[int64]models.AccessRequest),
		entries:  make(map[int64]models.VaultEntry),
		nextID:   1,
	}
}

func (s *memStore) storages(now func() time.Time) *store.Storages {
	return &store.Storages{
		UserRepository:           s,
		TrustedContactRepository: s,
		AccessRequestRepository:  s,
		VaultEntryRepository:     s,
		ActivityRepository:       s,
		KeyWrapStore:             store.NewMemoryKeyWrapStore(now),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) withOwner(r models.AccessRequest) models.AccessRequest {
	r.OwnerID = s.contacts[r.ContactID].UserID
	return r
}

// users

func (s *memStore) CreateUser(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}
	u.UserID = s.id()
	s.users[u.UserID] = u
	return u, nil
}

func (s *memStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (s *memStore) FindUserByID(_ context.Context, id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return u, nil
}

func (s *memStore) TouchLastActivity(_ context.Context, id int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return store.ErrUserNotFound
	}
	u.LastActivityAt = &at
	s.users[id] = u
	return nil
}

// contacts

func (s *memStore) CreateContact(_ context.Context, c models.TrustedContact) (models.TrustedContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.contacts {
		if existing.UserID == c.UserID && existing.Status.IsCurrent() {
			return models.TrustedContact{}, store.ErrContactAlreadyExists
		}
	}
	c.ID = s.id()
	c.UpdatedAt = c.CreatedAt
	s.contacts[c.ID] = c
	return c, nil
}

func (s *memStore) FindContactByID(_ context.Context, id int64) (models.TrustedContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contacts[id]
	if !ok {
		return models.TrustedContact{}, store.ErrContactNotFound
	}
	return c, nil
}

func (s *memStore) FindCurrentContact(_ context.Context, ownerID int64) (models.TrustedContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.contacts {
		if c.UserID == ownerID && c.Status.IsCurrent() {
			return c, nil
		}
	}
	return models.TrustedContact{}, store.ErrContactNotFound
}

func (s *memStore) FindContactByInvitation(_ context.Context, hash string) (models.TrustedContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.contacts {
		if c.InvitationHash == hash && c.InvitationHash != "" {
			return c, nil
		}
	}
	return models.TrustedContact{}, store.ErrContactNotFound
}

func (s *memStore) ListActiveContacts(_ context.Context) ([]models.TrustedContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.TrustedContact
	for _, c := range s.contacts {
		if c.Status == models.ContactActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) AnswerInvitation(_ context.Context, id int64, status models.ContactStatus, publicKey string, at time.Time) (models.TrustedContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contacts[id]
	if !ok || c.Status != models.ContactPending {
		return models.TrustedContact{}, store.ErrContactStateConflict
	}
	c.Status = status
	c.PublicKey = publicKey
	c.InvitationHash = ""
	if status == models.ContactActive {
		c.LastInactivityResetDate = at
	}
	c.UpdatedAt = at
	s.contacts[id] = c
	return c, nil
}

func (s *memStore) ResetInactivity(_ context.Context, id int64, at time.Time) (models.TrustedContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contacts[id]
	if !ok || !c.Status.IsCurrent() {
		return models.TrustedContact{}, store.ErrContactStateConflict
	}
	if at.After(c.LastInactivityResetDate) {
		c.LastInactivityResetDate = at
	}
	s.contacts[id] = c
	return c, nil
}

func (s *memStore) ResetInactivityForOwner(_ context.Context, ownerID int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.contacts {
		if c.UserID == ownerID && c.Status.IsCurrent() && at.After(c.LastInactivityResetDate) {
			c.LastInactivityResetDate = at
			s.contacts[id] = c
		}
	}
	return nil
}

func (s *memStore) RevokeContact(_ context.Context, id int64, at time.Time, message string) (models.TrustedContact, []models.AccessRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contacts[id]
	if !ok || !c.Status.IsCurrent() {
		return models.TrustedContact{}, nil, store.ErrContactStateConflict
	}
	c.Status = models.ContactRevoked
	c.UpdatedAt = at
	s.contacts[id] = c

	var denied []models.AccessRequest
	for rid, r := range s.requests {
		if r.ContactID == id && r.Status == models.RequestPending {
			r.Status = models.RequestDenied
			r.RespondedAt = &at
			r.ResponseMessage = message
			r.ResolvedBy = models.ResolvedByOwner
			s.requests[rid] = r
			denied = append(denied, s.withOwner(r))
		}
	}
	return c, denied, nil
}

// requests

func (s *memStore) CreateRequest(_ context.Context, r models.AccessRequest) (models.AccessRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contacts[r.ContactID]; !ok {
		return models.AccessRequest{}, store.ErrContactNotFound
	}
	for _, existing := range s.requests {
		if existing.ContactID == r.ContactID && existing.Status == models.RequestPending {
			return models.AccessRequest{}, store.ErrPendingRequestExists
		}
	}
	r.ID = s.id()
	s.requests[r.ID] = r
	return s.withOwner(r), nil
}

func (s *memStore) FindRequestByID(_ context.Context, id int64) (models.AccessRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok {
		return models.AccessRequest{}, store.ErrRequestNotFound
	}
	return s.withOwner(r), nil
}

func (s *memStore) FindRequestByTokenHash(_ context.Context, hash string) (models.AccessRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.AccessTokenHash != nil && *r.AccessTokenHash == hash {
			return s.withOwner(r), nil
		}
	}
	return models.AccessRequest{}, store.ErrRequestNotFound
}

func (s *memStore) FindPendingRequest(_ context.Context, contactID int64) (models.AccessRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.ContactID == contactID && r.Status == models.RequestPending {
			return s.withOwner(r), nil
		}
	}
	return models.AccessRequest{}, store.ErrRequestNotFound
}

func (s *memStore) HasRequestSince(_ context.Context, contactID int64, since time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.ContactID == contactID && !r.RequestedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) ListRequestsByOwner(_ context.Context, ownerID int64, statuses ...models.RequestStatus) ([]models.AccessRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.AccessRequest
	for _, r := range s.requests {
		r = s.withOwner(r)
		if r.OwnerID != ownerID {
			continue
		}
		if len(statuses) > 0 && !containsStatus(statuses, r.Status) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *memStore) ListDueRequests(_ context.Context, now time.Time) ([]models.AccessRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.AccessRequest
	for _, r := range s.requests {
		if r.Status == models.RequestPending && !r.AutoApproveAt.After(now) {
			out = append(out, s.withOwner(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) ResolveRequest(_ context.Context, res models.RequestResolution) (models.AccessRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[res.RequestID]
	if !ok {
		return models.AccessRequest{}, store.ErrRequestNotFound
	}
	if !models.CanTransition(r.Status, res.Status) {
		return models.AccessRequest{}, store.ErrRequestNotPending
	}
	respondedAt := res.RespondedAt
	r.Status = res.Status
	r.RespondedAt = &respondedAt
	r.ExpiresAt = res.ExpiresAt
	r.ResponseMessage = res.ResponseMessage
	r.ResolvedBy = res.ResolvedBy
	r.AccessTokenHash = res.AccessTokenHash
	r.SealedToken = res.SealedToken
	s.requests[r.ID] = r
	return s.withOwner(r), nil
}

// entries

func (s *memStore) CreateEntry(_ context.Context, e models.VaultEntry) (models.VaultEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.id()
	e.UpdatedAt = e.CreatedAt
	if e.Status == "" {
		e.Status = models.EntryActive
	}
	s.entries[e.ID] = e
	return e, nil
}

func (s *memStore) ListEntries(_ context.Context, ownerID int64) ([]models.VaultEntry, error) {
	return s.filterEntries(func(e models.VaultEntry) bool {
		return e.UserID == ownerID && e.Status != models.EntryDeleted
	}), nil
}

func (s *memStore) ListEmergencyEntries(_ context.Context, ownerID int64) ([]models.VaultEntry, error) {
	return s.filterEntries(func(e models.VaultEntry) bool {
		return e.UserID == ownerID && e.Status == models.EntryActive && e.AllowEmergencyAccess
	}), nil
}

func (s *memStore) filterEntries(keep func(models.VaultEntry) bool) []models.VaultEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.VaultEntry
	for _, e := range s.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) SetEmergencyAccess(_ context.Context, ownerID, entryID int64, allow bool, at time.Time) (models.VaultEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[entryID]
	if !ok || e.UserID != ownerID || e.Status == models.EntryDeleted {
		return models.VaultEntry{}, store.ErrEntryNotFound
	}
	e.AllowEmergencyAccess = allow
	e.UpdatedAt = at
	s.entries[entryID] = e
	return e, nil
}

// activity

func (s *memStore) RecordActivity(_ context.Context, entry models.ActivityEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = s.id()
	s.activity = append(s.activity, entry)
	return nil
}

func (s *memStore) ListActivity(_ context.Context, ownerID int64, limit uint64) ([]models.ActivityEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ActivityEntry
	for i := len(s.activity) - 1; i >= 0 && uint64(len(out)) < limit; i-- {
		if s.activity[i].UserID == ownerID {
			out = append(out, s.activity[i])
		}
	}
	return out, nil
}

func (s *memStore) actions(ownerID int64) []models.ActivityAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ActivityAction
	for _, a := range s.activity {
		if a.UserID == ownerID {
			out = append(out, a.Action)
		}
	}
	return out
}

func containsStatus(statuses []models.RequestStatus, s models.RequestStatus) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}
