package service

import (
	"context"
	"time"
	"tripavail/config"

	"github.com/rs/zerolog/log"
)

const defaultReaperInterval = time.Minute

// Reaper sweeps holds whose TTL passed without payment. Lazy expiry in Hold
// covers contended nights, the reaper covers the rest.
type Reaper struct {
	booking   Booking
	interval  time.Duration
	batchSize int
}

func NewReaper(booking Booking, cfg *config.Config) *Reaper {
	interval := time.Duration(cfg.Booking.Reaper.IntervalSeconds) * time.Second
	if interval <= 0 {
		interval = defaultReaperInterval
	}

	return &Reaper{
		booking:   booking,
		interval:  interval,
		batchSize: max(cfg.Booking.Reaper.BatchSize, 1),
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (r *Reaper) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", r.interval).Int("batch_size", r.batchSize).Msg("hold reaper started")

	for {
		r.Sweep(ctx)

		select {
		case <-ctx.Done():
			log.Info().Msg("hold reaper stopped")

			return nil
		case <-ticker.C:
		}
	}
}

// Sweep expires batches until a batch comes back short. It returns the total expired.
func (r *Reaper) Sweep(ctx context.Context) int {
	total := 0

	for ctx.Err() == nil {
		count, err := r.booking.ExpireHolds(ctx, r.batchSize)
		total += count

		if err != nil {
			log.Error().Err(err).Msg("failed to sweep expired holds")

			break
		}

		if count < r.batchSize {
			break
		}
	}

	if total > 0 {
		log.Info().Int("expired", total).Msg("expired holds released")
	}

	return total
}
