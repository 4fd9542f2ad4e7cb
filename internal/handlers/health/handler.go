package health

import (
	"context"
	"net/http"
	"time"
	"tripavail/infras/otel"
	"tripavail/infras/postgres"
	"tripavail/shared/constant"
	"tripavail/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

const (
	StatusUp   = "up"
	StatusDown = "down"
)

type Response struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

type Handler struct {
	db    *postgres.Connection
	redis *goRedis.Client
	otel  otel.Otel
}

func New(db *postgres.Connection, redis *goRedis.Client, otel otel.Otel) Handler {
	return Handler{
		db:    db,
		redis: redis,
		otel:  otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Check)
}

// Check pings the database and the cache.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Response] "All components up"
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler *Handler) Check(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HealthCheck")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	res := Response{Status: StatusUp, Components: map[string]string{}}

	check := func(name string, ping func(context.Context) error) {
		if err := ping(ctx); err != nil {
			log.Error().Err(err).Str("component", name).Msg("health check failed")

			res.Components[name] = StatusDown
			res.Status = StatusDown

			return
		}

		res.Components[name] = StatusUp
	}

	check("postgres_write", handler.db.Write.PingContext)
	check("postgres_read", handler.db.Read.PingContext)
	check("redis", func(ctx context.Context) error { return handler.redis.Ping(ctx).Err() })

	if res.Status != StatusUp {
		response.WithUnhealthy(writer)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
