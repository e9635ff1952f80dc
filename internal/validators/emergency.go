// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/vaultkeeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName             = "name"
	FieldEmail            = "email"
	FieldAccessLevel      = "access_level"
	FieldWaitingPeriod    = "waiting_period"
	FieldInactivityPeriod = "inactivity_period"

	FieldOwnerEmail   = "owner_email"
	FieldContactEmail = "contact_email"
	FieldReason       = "reason"

	FieldDecision = "decision"
	FieldMessage  = "message"

	FieldWrappedKey = "wrapped_key"

	FieldTitle   = "title"
	FieldContent = "content"
)

const (
	maxNameLength       = 200
	maxReasonLength     = 2000
	maxMessageLength    = 2000
	maxWrappedKeyLength = 16 << 10
	maxContentLength    = 512 << 10
)

// EmergencyValidator validates the inputs of the trusted contact, access
// request and vault entry operations. Values and pointers are both accepted.
// Empty access levels and periods pass: services fill in defaults for them.
type EmergencyValidator struct{}

func NewEmergencyValidator() Validator {
	return &EmergencyValidator{}
}

func (v *EmergencyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewTrustedContact:
		return v.validateNewContact(value, fields...)
	case *models.NewTrustedContact:
		return v.validateNewContact(*value, fields...)

	case models.EmergencyAccessInput:
		return v.validateAccessInput(value, fields...)
	case *models.EmergencyAccessInput:
		return v.validateAccessInput(*value, fields...)

	case models.ResponseInput:
		return v.validateResponse(value, fields...)
	case *models.ResponseInput:
		return v.validateResponse(*value, fields...)

	case models.KeyWrapInput:
		return v.validateKeyWrap(value, fields...)
	case *models.KeyWrapInput:
		return v.validateKeyWrap(*value, fields...)

	case models.NewVaultEntry:
		return v.validateEntry(value, fields...)
	case *models.NewVaultEntry:
		return v.validateEntry(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EmergencyValidator) validateNewContact(contact models.NewTrustedContact, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldAccessLevel, FieldWaitingPeriod, FieldInactivityPeriod}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(contact.Name)
			if name == "" {
				return ErrEmptyName
			}
			if len(name) > maxNameLength {
				return ErrNameTooLong
			}
		case FieldEmail:
			if !isEmail(contact.Email) {
				return ErrInvalidEmail
			}
		case FieldAccessLevel:
			if contact.AccessLevel != "" && !contact.AccessLevel.Valid() {
				return ErrInvalidAccessLevel
			}
		case FieldWaitingPeriod:
			if !validPeriod(contact.WaitingPeriod) {
				return ErrInvalidPeriod
			}
		case FieldInactivityPeriod:
			if !validPeriod(contact.InactivityPeriod) {
				return ErrInvalidPeriod
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EmergencyValidator) validateAccessInput(input models.EmergencyAccessInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerEmail, FieldContactEmail, FieldReason}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerEmail:
			if !isEmail(input.OwnerEmail) {
				return ErrInvalidEmail
			}
		case FieldContactEmail:
			if !isEmail(input.ContactEmail) {
				return ErrInvalidEmail
			}
		case FieldReason:
			if len(input.Reason) > maxReasonLength {
				return ErrReasonTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EmergencyValidator) validateResponse(input models.ResponseInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDecision, FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldDecision:
			if !input.Decision.Valid() {
				return ErrInvalidDecision
			}
		case FieldMessage:
			if len(input.Message) > maxMessageLength {
				return ErrMessageTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EmergencyValidator) validateKeyWrap(input models.KeyWrapInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWrappedKey}
	}

	for _, f := range fields {
		switch f {
		case FieldWrappedKey:
			if strings.TrimSpace(input.WrappedKey) == "" {
				return ErrEmptyWrappedKey
			}
			if len(input.WrappedKey) > maxWrappedKeyLength {
				return ErrWrappedKeyTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EmergencyValidator) validateEntry(entry models.NewVaultEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(entry.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if strings.TrimSpace(entry.Content) == "" {
				return ErrEmptyContent
			}
			if len(entry.Content) > maxContentLength {
				return ErrContentTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isEmail accepts a bare address only, not "Name <addr>".
func isEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func validPeriod(p models.Period) bool {
	return p.IsZero() || p.Duration() > 0
}
