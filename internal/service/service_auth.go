// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/config"
	"github.com/MKhiriev/vaultkeeper/internal/crypto"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/store"
	"github.com/MKhiriev/vaultkeeper/internal/utils"
	"github.com/MKhiriev/vaultkeeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles owner registration, credential verification, and JWT token
// lifecycle. The server never sees the owner's password: clients send an
// auth hash derived from it, and only an HMAC of that hash is stored.
type authService struct {
	userRepository store.UserRepository

	// contacts is told about every successful login so that the
	// inactivity window of the owner's contact starts over.
	contacts TrustedContactRegistry

	// hashKey is the HMAC secret applied to auth hashes.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository
// and contact registry and populated with security parameters from cfg.
func NewAuthService(userRepository store.UserRepository, contacts TrustedContactRegistry, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		contacts:       contacts,
		hashKey:        cfg.PasswordHashKey,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new owner account.
//
// A random per-owner encryption salt is generated when the client did not
// send one. Returns ErrInvalidDataProvided for a missing email or auth hash
// and ErrUserAlreadyExists when the email is taken.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" || user.AuthHash == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if user.EncryptionSalt == "" {
		salt, err := crypto.GenerateSalt()
		if err != nil {
			log.Err(err).Msg("error generating encryption salt")
			return models.User{}, fmt.Errorf("error generating encryption salt: %w", err)
		}
		user.EncryptionSalt = base64.StdEncoding.EncodeToString(salt)
	}

	a.hashAuth(&user)
	user.Status = models.UserActive

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an owner by email and auth hash.
//
// A successful login refreshes last_activity_at and resets the inactivity
// window of the owner's trusted contact. If that reset fails the login
// fails too, so an active owner is never reported as inactive.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(user.Email) == "" || user.AuthHash == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, strings.TrimSpace(user.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	a.hashAuth(&user)
	if !utils.EqualSecret(foundUser.AuthHash, user.AuthHash) {
		log.Warn().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if foundUser.Status != models.UserActive {
		log.Warn().Int64("id", foundUser.UserID).Str("status", string(foundUser.Status)).Msg("login to inactive account")
		return models.User{}, ErrAccountNotActive
	}

	now := a.now()
	if err = a.contacts.ResetInactivityForOwner(ctx, foundUser.UserID); err != nil {
		return models.User{}, fmt.Errorf("error resetting inactivity on login: %w", err)
	}
	if err = a.userRepository.TouchLastActivity(ctx, foundUser.UserID, now); err != nil {
		return models.User{}, fmt.Errorf("error updating last activity: %w", err)
	}
	foundUser.LastActivityAt = &now

	return foundUser, nil
}

// Params returns what a client needs before deriving keys: the salt.
func (a *authService) Params(ctx context.Context, email string) (models.UserParams, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" {
		return models.UserParams{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.UserParams{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.UserParams{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return models.UserParams{Email: foundUser.Email, EncryptionSalt: foundUser.EncryptionSalt}, nil
}

// CreateToken issues a signed JWT for the given owner.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Every validation
// failure is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// hashAuth replaces the client auth hash with its HMAC under hashKey.
func (a *authService) hashAuth(user *models.User) {
	user.AuthHash = utils.HashString(user.AuthHash, a.hashKey)
}
