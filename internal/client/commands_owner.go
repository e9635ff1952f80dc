// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/vaultkeeper/models"
)

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.flagSet("register")
	email := fs.String("email", "", "owner email")
	name := fs.String("name", "", "owner display name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"email": *email}); err != nil {
		return err
	}

	password, err := a.password("Choose a master password: ")
	if err != nil {
		return err
	}
	confirm, err := a.password("Repeat the master password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err = a.services.AuthService.Register(ctx, models.Credentials{Email: *email, Name: *name, Password: password}); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registered %s\n", *email)
	return nil
}

func (a *App) addContact(ctx context.Context, args []string) error {
	fs := a.flagSet("add-contact")
	owner := fs.String("email", "", "owner email")
	contactName := fs.String("contact-name", "", "contact name")
	contactEmail := fs.String("contact-email", "", "contact email")
	level := fs.String("access-level", string(models.AccessLevelView), "view or full")
	waiting := fs.String("waiting", "", `waiting period, e.g. "48 hours"`)
	inactivity := fs.String("inactivity", "", `inactivity period, e.g. "90 days"`)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"contact-name": *contactName, "contact-email": *contactEmail}); err != nil {
		return err
	}
	if err := a.login(ctx, *owner); err != nil {
		return err
	}

	contact := models.NewTrustedContact{
		Name:        *contactName,
		Email:       *contactEmail,
		AccessLevel: models.AccessLevel(*level),
	}
	if *waiting != "" {
		contact.WaitingPeriod = models.ParsePeriod(*waiting)
	}
	if *inactivity != "" {
		contact.InactivityPeriod = models.ParsePeriod(*inactivity)
	}

	invitation, err := a.adapter.AddContact(ctx, contact)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "invitation code for %s (shown once): %s\n", invitation.Contact.Email, invitation.InvitationCode)
	return nil
}

func (a *App) showContact(ctx context.Context, args []string) error {
	fs := a.flagSet("contact")
	owner := fs.String("email", "", "owner email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.login(ctx, *owner); err != nil {
		return err
	}

	contact, err := a.adapter.GetContact(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(contact)
}

func (a *App) revokeContact(ctx context.Context, args []string) error {
	fs := a.flagSet("revoke")
	owner := fs.String("email", "", "owner email")
	id := fs.Int64("id", 0, "contact id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: -id", ErrMissingFlag)
	}
	if err := a.login(ctx, *owner); err != nil {
		return err
	}

	contact, err := a.adapter.RevokeContact(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "contact %d is now %s\n", contact.ID, contact.Status)
	return nil
}

func (a *App) resetInactivity(ctx context.Context, args []string) error {
	fs := a.flagSet("reset")
	owner := fs.String("email", "", "owner email")
	id := fs.Int64("id", 0, "contact id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: -id", ErrMissingFlag)
	}
	if err := a.login(ctx, *owner); err != nil {
		return err
	}

	contact, err := a.adapter.ResetInactivity(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "inactivity window restarted at %s\n", contact.LastInactivityResetDate.Format("2006-01-02 15:04 MST"))
	return nil
}

func (a *App) listRequests(ctx context.Context, args []string) error {
	fs := a.flagSet("requests")
	owner := fs.String("email", "", "owner email")
	pending := fs.Bool("pending", false, "only pending requests")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.login(ctx, *owner); err != nil {
		return err
	}

	requests, err := a.adapter.ListAccessRequests(ctx, *pending)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		fmt.Fprintln(a.out, "no access requests")
		return nil
	}
	return a.printJSON(requests)
}

func (a *App) respond(ctx context.Context, args []string) error {
	fs := a.flagSet("respond")
	owner := fs.String("email", "", "owner email")
	id := fs.Int64("id", 0, "request id")
	decision := fs.String("decision", "", "approve or deny")
	message := fs.String("message", "", "optional message to the contact")
	share := fs.Bool("share-key", true, "deposit the wrapped vault key when approving")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: -id", ErrMissingFlag)
	}
	if err := required(map[string]string{"decision": *decision}); err != nil {
		return err
	}
	if err := a.login(ctx, *owner); err != nil {
		return err
	}

	input := models.ResponseInput{Decision: models.Decision(strings.ToLower(*decision)), Message: *message}
	request, err := a.adapter.Respond(ctx, *id, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "request %d is now %s\n", request.ID, request.Status)

	if request.Status == models.RequestApproved && *share {
		if err = a.services.VaultService.ShareKey(ctx, request.ID); err != nil {
			return fmt.Errorf("share vault key: %w", err)
		}
		fmt.Fprintln(a.out, "vault key shared with the contact")
	}
	return nil
}

func (a *App) shareKey(ctx context.Context, args []string) error {
	fs := a.flagSet("share-key")
	owner := fs.String("email", "", "owner email")
	id := fs.Int64("id", 0, "request id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: -id", ErrMissingFlag)
	}
	if err := a.login(ctx, *owner); err != nil {
		return err
	}

	if err := a.services.VaultService.ShareKey(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "vault key deposited for request %d\n", *id)
	return nil
}

func (a *App) addEntry(ctx context.Context, args []string) error {
	fs := a.flagSet("add-entry")
	owner := fs.String("email", "", "owner email")
	title := fs.String("title", "", "entry title")
	content := fs.String("content", "", "entry content")
	emergency := fs.Bool("emergency", false, "share the entry in an emergency")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(map[string]string{"title": *title, "content": *content}); err != nil {
		return err
	}
	if err := a.login(ctx, *owner); err != nil {
		return err
	}

	entry, err := a.services.VaultService.AddEntry(ctx, models.PlainEntry{
		Title:                *title,
		Content:              *content,
		AllowEmergencyAccess: *emergency,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "stored entry %d\n", entry.ID)
	return nil
}

func (a *App) listEntries(ctx context.Context, args []string) error {
	fs := a.flagSet("entries")
	owner := fs.String("email", "", "owner email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.login(ctx, *owner); err != nil {
		return err
	}

	entries, err := a.services.VaultService.ListEntries(ctx)
	if err != nil {
		return err
	}
	a.printEntries(entries)
	return nil
}

func (a *App) shareEntry(ctx context.Context, args []string) error {
	fs := a.flagSet("share-entry")
	owner := fs.String("email", "", "owner email")
	id := fs.Int64("id", 0, "entry id")
	allow := fs.Bool("allow", true, "allow emergency access")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: -id", ErrMissingFlag)
	}
	if err := a.login(ctx, *owner); err != nil {
		return err
	}

	entry, err := a.adapter.SetEmergencyAccess(ctx, *id, *allow)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "entry %d emergency access: %t\n", entry.ID, entry.AllowEmergencyAccess)
	return nil
}

func (a *App) activity(ctx context.Context, args []string) error {
	fs := a.flagSet("activity")
	owner := fs.String("email", "", "owner email")
	limit := fs.Uint("limit", 0, "number of entries, server default when zero")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.login(ctx, *owner); err != nil {
		return err
	}

	activity, err := a.adapter.ListActivity(ctx, *limit)
	if err != nil {
		return err
	}
	for _, e := range activity {
		fmt.Fprintf(a.out, "%s  %-8s %s %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Actor, e.Action, e.Details)
	}
	return nil
}

func (a *App) printEntries(entries []models.PlainEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "no entries")
		return
	}
	for _, e := range entries {
		shared := ""
		if e.AllowEmergencyAccess {
			shared = " [emergency]"
		}
		fmt.Fprintf(a.out, "#%d %s%s\n%s\n\n", e.ID, e.Title, shared, e.Content)
	}
}
