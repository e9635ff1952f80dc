// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/vaultkeeper/internal/adapter"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/service"
	"github.com/MKhiriev/vaultkeeper/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// App dispatches subcommands to the client services.
type App struct {
	services *service.ClientServices
	adapter  adapter.ServerAdapter

	password PasswordReader
	out      io.Writer
	errOut   io.Writer

	build  models.BuildInfo
	logger *logger.Logger

	commands map[string]command
}

func NewApp(services *service.ClientServices, serverAdapter adapter.ServerAdapter, password PasswordReader, out, errOut io.Writer, build models.BuildInfo, log *logger.Logger) *App {
	a := &App{
		services: services,
		adapter:  serverAdapter,
		password: password,
		out:      out,
		errOut:   errOut,
		build:    build,
		logger:   log,
	}

	a.commands = map[string]command{
		"version": {usage: "show client and server versions", run: a.version},

		"register":    {usage: "create an owner account", run: a.register},
		"add-contact": {usage: "designate the trusted contact", run: a.addContact},
		"contact":     {usage: "show the trusted contact", run: a.showContact},
		"revoke":      {usage: "revoke the trusted contact", run: a.revokeContact},
		"reset":       {usage: "reset the inactivity window of the contact", run: a.resetInactivity},
		"requests":    {usage: "list access requests", run: a.listRequests},
		"respond":     {usage: "approve or deny a pending request", run: a.respond},
		"share-key":   {usage: "wrap the vault key for the contact of a request", run: a.shareKey},
		"add-entry":   {usage: "encrypt and store a vault entry", run: a.addEntry},
		"entries":     {usage: "list and decrypt vault entries", run: a.listEntries},
		"share-entry": {usage: "allow or forbid emergency access to an entry", run: a.shareEntry},
		"activity":    {usage: "show the activity log", run: a.activity},
		"keygen":      {usage: "create a contact key pair", run: a.keygen},
		"accept":      {usage: "accept an invitation as the contact", run: a.accept},
		"decline":     {usage: "decline an invitation as the contact", run: a.decline},
		"request":     {usage: "request emergency access as the contact", run: a.requestAccess},
		"status":      {usage: "poll the state of an access request", run: a.status},
		"token":       {usage: "collect the access token of an approved request", run: a.collectToken},
		"verify":      {usage: "check an access token", run: a.verify},
		"open":        {usage: "open the owner's shared entries", run: a.open},
	}

	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, args[1:])
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.errOut, "usage: vaultkeeper <command> [flags]")
	fmt.Fprintln(a.errOut)
	for _, name := range names {
		fmt.Fprintf(a.errOut, "  %-12s %s\n", name, a.commands[name].usage)
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

// login authenticates the owner named by email and unlocks the vault key
// for the rest of the command.
func (a *App) login(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: -email", ErrMissingFlag)
	}

	password, err := a.password("Master password: ")
	if err != nil {
		return err
	}

	return a.services.AuthService.Login(ctx, models.Credentials{Email: email, Password: password})
}

func (a *App) printJSON(v any) error {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(body))
	return err
}

func required(values map[string]string) error {
	var missing []string
	for name, value := range values {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, "-"+name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: %s", ErrMissingFlag, strings.Join(missing, ", "))
}

func (a *App) version(ctx context.Context, _ []string) error {
	fmt.Fprintf(a.out, "client: %s (%s, %s)\n", a.build.Version, a.build.Commit, a.build.Date)

	info, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server version unavailable")
		fmt.Fprintln(a.out, "server: unavailable")
		return nil
	}
	fmt.Fprintf(a.out, "server: %s (%s, %s)\n", info.Version, info.Commit, info.Date)
	return nil
}
