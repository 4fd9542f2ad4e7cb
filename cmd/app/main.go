package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	"tripavail/config"
	"tripavail/di"
	"tripavail/helper"
	"tripavail/shared/logger"
	"tripavail/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const closeTimeout = 5 * time.Second

// @title Tripavail Booking API
// @version 1.0
// @description Reservation lifecycle for hotel and tour packages: quote, hold, pre-authorize, confirm, cancel and complete.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize timezone")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := di.InitializeApp()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return app.HTTP.Serve(ctx)
	})

	if cfg.Booking.Reaper.Enable {
		group.Go(func() error {
			return app.Reaper.Run(ctx)
		})
	}

	err := group.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if closeErr := app.Close(closeCtx); closeErr != nil {
		log.Error().Err(closeErr).Msg("Failed to flush telemetry and events")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Service stopped with error") //nolint:gocritic
	}

	log.Info().Msg("Service stopped")
}
