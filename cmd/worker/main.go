package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	"tripavail/config"
	"tripavail/di"
	"tripavail/shared/logger"
	"tripavail/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const closeTimeout = 5 * time.Second

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize timezone")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return worker.Reaper.Run(ctx)
	})

	err := group.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if closeErr := worker.Close(closeCtx); closeErr != nil {
		log.Error().Err(closeErr).Msg("Failed to flush telemetry and events")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Worker stopped with error") //nolint:gocritic
	}

	log.Info().Msg("Worker stopped")
}
