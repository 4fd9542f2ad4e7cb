//go:build wireinject
// +build wireinject

package di

import (
	"tripavail/config"
	"tripavail/infras/jwt"
	"tripavail/infras/kafka"
	"tripavail/infras/metrics"
	"tripavail/infras/otel"
	"tripavail/infras/postgres"
	"tripavail/infras/processor"
	"tripavail/infras/redis"
	"tripavail/infras/s3"
	"tripavail/permissions"
	"tripavail/shared/cache"
	"tripavail/transport/http"
	"tripavail/transport/http/middleware"
	"tripavail/transport/http/router"

	bookingEvent "tripavail/internal/domains/booking/event"
	bookingRepository "tripavail/internal/domains/booking/repository"
	bookingService "tripavail/internal/domains/booking/service"
	catalogRepository "tripavail/internal/domains/catalog/repository"
	catalogService "tripavail/internal/domains/catalog/service"
	idempotencyRepository "tripavail/internal/domains/idempotency/repository"
	idempotencyService "tripavail/internal/domains/idempotency/service"
	inventoryRepository "tripavail/internal/domains/inventory/repository"
	inventoryService "tripavail/internal/domains/inventory/service"
	ledgerRepository "tripavail/internal/domains/ledger/repository"
	ledgerService "tripavail/internal/domains/ledger/service"
	paymentRepository "tripavail/internal/domains/payment/repository"
	paymentService "tripavail/internal/domains/payment/service"
	pricingService "tripavail/internal/domains/pricing/service"

	bookingHandler "tripavail/internal/handlers/booking"
	healthHandler "tripavail/internal/handlers/health"
	inventoryHandler "tripavail/internal/handlers/inventory"
	ledgerHandler "tripavail/internal/handlers/ledger"
	paymentHandler "tripavail/internal/handlers/payment"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	metrics.New,
	processor.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewPackage,
	catalogRepository.NewRoom,
	catalogRepository.NewAddOn,
	catalogService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var ledgerDomain = wire.NewSet(
	ledgerRepository.New,
	ledgerService.New,
)

var idempotencyDomain = wire.NewSet(
	idempotencyRepository.New,
	idempotencyService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.New,
	pricingService.New,
	bookingService.New,
	bookingService.NewReaper,
)

var domains = wire.NewSet(
	catalogDomain,
	inventoryDomain,
	paymentDomain,
	ledgerDomain,
	idempotencyDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	paymentHandler.New,
	ledgerHandler.New,
	inventoryHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}

func InitializeWorker() *Worker {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		wire.Struct(new(Worker), "*"),
	)

	return &Worker{}
}
