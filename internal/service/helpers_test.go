// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/mock"
	"github.com/MKhiriev/vaultkeeper/internal/store"
	"github.com/MKhiriev/vaultkeeper/models"
	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// storeMocks bundles gomock doubles for every repository.
type storeMocks struct {
	users    *mock.MockUserRepository
	contacts *mock.MockTrustedContactRepository
	requests *mock.MockAccessRequestRepository
	entries  *mock.MockVaultEntryRepository
	activity *mock.MockActivityRepository
	keyWraps *mock.MockKeyWrapStore
}

func newStoreMocks(t *testing.T) (*storeMocks, *store.Storages) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &storeMocks{
		users:    mock.NewMockUserRepository(ctrl),
		contacts: mock.NewMockTrustedContactRepository(ctrl),
		requests: mock.NewMockAccessRequestRepository(ctrl),
		entries:  mock.NewMockVaultEntryRepository(ctrl),
		activity: mock.NewMockActivityRepository(ctrl),
		keyWraps: mock.NewMockKeyWrapStore(ctrl),
	}

	return m, &store.Storages{
		UserRepository:           m.users,
		TrustedContactRepository: m.contacts,
		AccessRequestRepository:  m.requests,
		VaultEntryRepository:     m.entries,
		ActivityRepository:       m.activity,
		KeyWrapStore:             m.keyWraps,
	}
}

// allowAudit accepts any number of activity rows.
func (m *storeMocks) allowAudit() {
	m.activity.EXPECT().RecordActivity(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// recordingSink keeps every notification it receives.
type recordingSink struct {
	mu   sync.Mutex
	sent []models.Notification
	err  error
}

func (s *recordingSink) Notify(_ context.Context, n models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, n)
	return s.err
}

func (s *recordingSink) kinds() []models.NotificationKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := make([]models.NotificationKind, 0, len(s.sent))
	for _, n := range s.sent {
		kinds = append(kinds, n.Kind())
	}
	return kinds
}

func (s *recordingSink) grants() []models.AccessGranted {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.AccessGranted
	for _, n := range s.sent {
		if g, ok := n.(models.AccessGranted); ok {
			out = append(out, g)
		}
	}
	return out
}

func testOwner() models.User {
	return models.User{UserID: 1, Email: "owner@example.com", Name: "Owner", Status: models.UserActive}
}

func activeContact() models.TrustedContact {
	return models.TrustedContact{
		ID:                      10,
		UserID:                  1,
		Name:                    "Contact",
		Email:                   "contact@example.com",
		Status:                  models.ContactActive,
		AccessLevel:             models.AccessLevelView,
		WaitingPeriod:           models.ParsePeriod("24 hours"),
		InactivityPeriod:        models.ParsePeriod("30 days"),
		LastInactivityResetDate: baseTime.Add(-time.Hour),
	}
}

func pendingRequest() models.AccessRequest {
	return models.AccessRequest{
		ID:            100,
		ContactID:     10,
		OwnerID:       1,
		Reason:        "hospital",
		Origin:        models.OriginContact,
		Status:        models.RequestPending,
		RequestedAt:   baseTime,
		AutoApproveAt: baseTime.Add(24 * time.Hour),
	}
}

func timePtr(t time.Time) *time.Time { return &t }
