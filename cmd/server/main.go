// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/config"
	"github.com/MKhiriev/vaultkeeper/internal/handler"
	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/internal/notify"
	"github.com/MKhiriev/vaultkeeper/internal/scheduler"
	"github.com/MKhiriev/vaultkeeper/internal/server"
	"github.com/MKhiriev/vaultkeeper/internal/service"
	"github.com/MKhiriev/vaultkeeper/internal/store"
	"github.com/MKhiriev/vaultkeeper/internal/workers"
	"github.com/MKhiriev/vaultkeeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := buildInfo()
	printBuildInfo(build)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewLogger("vaultkeeper-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	dispatcher := notify.NewDispatcher(notify.NewSinks(cfg.Notify, storages.Redis, log), cfg.Notify.QueueSize, log)
	services := service.NewServices(storages, dispatcher, cfg.App, build, log)

	sched := scheduler.New(log)
	if err = registerSweeps(sched, services.SweepService, cfg.Workers, log); err != nil {
		log.Fatal().Err(err).Msg("error scheduling sweeps")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("address", cfg.Server.HTTPAddress).Msg("vaultkeeper server started")
	workers.NewWorkers(dispatcher, sched, srv).Run(ctx)
	log.Info().Msg("vaultkeeper server stopped")
}

// registerSweeps schedules the inactivity sweep and the auto-approval sweep.
// Both share the scheduler queue, so they never run at the same time.
func registerSweeps(sched *scheduler.Scheduler, sweeps service.SweepService, cfg config.Workers, log *logger.Logger) error {
	err := sched.Register("inactivity", cfg.InactivitySchedule, func(ctx context.Context, now time.Time) error {
		created, err := sweeps.SweepInactivity(ctx, now)
		if len(created) > 0 {
			log.Info().Int("created", len(created)).Msg("inactivity sweep filed requests")
		}
		return err
	})
	if err != nil {
		return err
	}

	return sched.Register("auto-approve", cfg.AutoApproveSchedule, func(ctx context.Context, now time.Time) error {
		resolved, err := sweeps.ResolveDue(ctx, now)
		if len(resolved) > 0 {
			log.Info().Int("resolved", len(resolved)).Msg("auto-approval sweep resolved requests")
		}
		return err
	})
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

func printBuildInfo(info models.BuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
