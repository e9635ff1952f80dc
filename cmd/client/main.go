// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/vaultkeeper/internal/adapter"
	"github.com/MKhiriev/vaultkeeper/internal/client"
	"github.com/MKhiriev/vaultkeeper/internal/config"
	"github.com/MKhiriev/vaultkeeper/internal/crypto"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/service"
	"github.com/MKhiriev/vaultkeeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewCLILogger("vaultkeeper-client", os.Getenv("VAULTKEEPER_VERBOSE") != "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	services := service.NewClientServices(serverAdapter, crypto.NewEnvelope())
	app := client.NewApp(
		services,
		serverAdapter,
		client.TerminalPassword(os.Stdin, os.Stderr),
		os.Stdout,
		os.Stderr,
		buildInfo(),
		log,
	)

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, client.ErrNoCommand) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

func buildInfo() models.BuildInfo {
	info := models.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	if info.Version == "" {
		info.Version = "N/A"
	}
	if info.Date == "" {
		info.Date = "N/A"
	}
	if info.Commit == "" {
		info.Commit = "N/A"
	}
	return info
}
