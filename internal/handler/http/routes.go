// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/user/params", h.params)

		r.Post("/api/trusted-contacts/invitation", h.answerInvitation)

		r.Post("/api/emergency-access-request", h.submitAccessRequest)
		r.Get("/api/emergency-access-request/{requestID}/status", h.accessRequestStatus)
		r.Post("/api/emergency-access/verify", h.verifyAccessToken)
		r.Get("/api/emergency-access/{ownerID}/entries", h.emergencyEntries)
	})

	// routes for external schedulers
	router.Group(func(r chi.Router) {
		r.Use(h.system)
		r.Get("/api/trusted-contacts/check-inactivity", h.checkInactivity)
	})

	// routes for authorized owners
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/trusted-contacts", h.getContact)
		r.Post("/api/trusted-contacts", h.addContact)
		r.Delete("/api/trusted-contacts/{contactID}", h.revokeContact)
		r.Post("/api/trusted-contacts/{contactID}/reset-inactivity", h.resetInactivity)

		r.Get("/api/access-requests", h.listAccessRequests)
		r.Get("/api/access-requests/pending", h.listPendingAccessRequests)
		r.Post("/api/access-requests/{requestID}/respond", h.respondToAccessRequest)
		r.Post("/api/access-requests/{requestID}/key-wrap", h.depositKeyWrap)

		r.Get("/api/entries", h.listEntries)
		r.Post("/api/entries", h.createEntry)
		r.Put("/api/entries/{entryID}/emergency-access", h.setEmergencyAccess)

		r.Get("/api/activity", h.listActivity)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
