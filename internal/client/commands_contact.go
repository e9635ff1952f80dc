// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/vaultkeeper/models"
)

const defaultKeyBits = 3072

func (a *App) keygen(_ context.Context, args []string) error {
	fs := a.flagSet("keygen")
	out := fs.String("out", "contact_key.pem", "private key file to create")
	bits := fs.Int("bits", defaultKeyBits, "RSA key size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	privatePEM, publicKey, err := a.services.ContactService.GenerateKeyPair(*bits)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(*out, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("create key file: %w", err)
	}
	if _, err = file.Write(privatePEM); err != nil {
		_ = file.Close()
		return fmt.Errorf("write key file: %w", err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("close key file: %w", err)
	}

	fmt.Fprintf(a.out, "private key written to %s\npublic key: %s\n", *out, publicKey)
	return nil
}

func (a *App) accept(ctx context.Context, args []string) error {
	fs := a.flagSet("accept")
	code := fs.String("code", "", "invitation code")
	keyFile := fs.String("key", "contact_key.pem", "private key file from keygen")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"code": *code, "key": *keyFile}); err != nil {
		return err
	}

	privatePEM, err := os.ReadFile(*keyFile)
	if err != nil {
		return fmt.Errorf("read key file: %w", err)
	}

	contact, err := a.services.ContactService.AcceptInvitation(ctx, *code, privatePEM)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "you are now the trusted contact of owner %d (waiting period %s)\n", contact.UserID, contact.WaitingPeriod)
	return nil
}

func (a *App) decline(ctx context.Context, args []string) error {
	fs := a.flagSet("decline")
	code := fs.String("code", "", "invitation code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"code": *code}); err != nil {
		return err
	}

	if _, err := a.services.ContactService.DeclineInvitation(ctx, *code); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "invitation declined")
	return nil
}

func (a *App) requestAccess(ctx context.Context, args []string) error {
	fs := a.flagSet("request")
	owner := fs.String("owner", "", "owner email")
	email := fs.String("email", "", "your email as the trusted contact")
	reason := fs.String("reason", "", "why access is needed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"owner": *owner, "email": *email}); err != nil {
		return err
	}

	request, err := a.adapter.SubmitAccessRequest(ctx, models.EmergencyAccessInput{
		OwnerEmail:   *owner,
		ContactEmail: *email,
		Reason:       *reason,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "request %d filed, auto-approval at %s unless the owner answers\n",
		request.ID, request.AutoApproveAt.Format(time.RFC3339))
	return nil
}

func (a *App) status(ctx context.Context, args []string) error {
	fs := a.flagSet("status")
	id := fs.Int64("id", 0, "request id")
	email := fs.String("email", "", "your email as the trusted contact")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: -id", ErrMissingFlag)
	}
	if err := required(map[string]string{"email": *email}); err != nil {
		return err
	}

	status, err := a.adapter.RequestStatus(ctx, *id, *email)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "request %d: %s\n", status.RequestID, status.Status)
	if status.Status == models.RequestPending {
		wait := time.Duration(status.SecondsUntilAutoApproval) * time.Second
		fmt.Fprintf(a.out, "auto-approval in %s\n", wait)
	}
	if status.ExpiresAt != nil {
		fmt.Fprintf(a.out, "access expires at %s\n", status.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}

func (a *App) collectToken(ctx context.Context, args []string) error {
	fs := a.flagSet("token")
	id := fs.Int64("id", 0, "request id")
	email := fs.String("email", "", "your email as the trusted contact")
	keyFile := fs.String("key", "contact_key.pem", "private key file from keygen")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: -id", ErrMissingFlag)
	}
	if err := required(map[string]string{"email": *email, "key": *keyFile}); err != nil {
		return err
	}

	privatePEM, err := os.ReadFile(*keyFile)
	if err != nil {
		return fmt.Errorf("read key file: %w", err)
	}

	token, status, err := a.services.ContactService.CollectToken(ctx, *id, *email, privatePEM)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "access token: %s\n", token)
	if status.ExpiresAt != nil {
		fmt.Fprintf(a.out, "valid until %s\n", status.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}

func (a *App) verify(ctx context.Context, args []string) error {
	fs := a.flagSet("verify")
	token := fs.String("token", "", "access token")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"token": *token}); err != nil {
		return err
	}

	verification, err := a.adapter.VerifyAccessToken(ctx, *token)
	if err != nil {
		return err
	}
	if !verification.Valid {
		fmt.Fprintln(a.out, "token is not valid")
		return nil
	}
	fmt.Fprintf(a.out, "token is valid for owner %d", verification.OwnerID)
	if verification.ExpiresAt != nil {
		fmt.Fprintf(a.out, " until %s", verification.ExpiresAt.Format(time.RFC3339))
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *App) open(ctx context.Context, args []string) error {
	fs := a.flagSet("open")
	ownerID := fs.Int64("owner-id", 0, "owner id from the grant")
	token := fs.String("token", "", "access token")
	keyFile := fs.String("key", "contact_key.pem", "private key file from keygen")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *ownerID <= 0 {
		return fmt.Errorf("%w: -owner-id", ErrMissingFlag)
	}
	if err := required(map[string]string{"token": *token, "key": *keyFile}); err != nil {
		return err
	}

	privatePEM, err := os.ReadFile(*keyFile)
	if err != nil {
		return fmt.Errorf("read key file: %w", err)
	}

	entries, err := a.services.ContactService.OpenVault(ctx, *ownerID, *token, privatePEM)
	if err != nil {
		return err
	}
	a.printEntries(entries)
	return nil
}
