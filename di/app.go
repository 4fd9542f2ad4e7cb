package di

import (
	"context"
	"errors"
	"tripavail/config"
	"tripavail/infras/kafka"
	"tripavail/infras/otel"
	"tripavail/infras/postgres"
	bookingService "tripavail/internal/domains/booking/service"
	"tripavail/transport/http"
)

// App is the API process: the HTTP server plus the embedded hold reaper.
type App struct {
	Config *config.Config
	HTTP   *http.HTTP
	Reaper *bookingService.Reaper
	DB     *postgres.Connection
	Otel   otel.Otel
	Kafka  kafka.Client
}

// Close flushes pending spans and events, then releases the database pools.
func (a *App) Close(ctx context.Context) error {
	return closeAll(ctx, a.DB, a.Otel, a.Kafka)
}

// Worker runs only the hold reaper.
type Worker struct {
	Config *config.Config
	Reaper *bookingService.Reaper
	DB     *postgres.Connection
	Otel   otel.Otel
	Kafka  kafka.Client
}

func (w *Worker) Close(ctx context.Context) error {
	return closeAll(ctx, w.DB, w.Otel, w.Kafka)
}

func closeAll(ctx context.Context, db *postgres.Connection, tracer otel.Otel, producer kafka.Client) error {
	return errors.Join(producer.Close(), tracer.Shutdown(ctx), db.Close())
}
