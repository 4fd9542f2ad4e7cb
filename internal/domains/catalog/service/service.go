package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tripavail/config"
	"tripavail/infras/otel"
	"tripavail/internal/domains/catalog/model"
	"tripavail/internal/domains/catalog/repository"
	"tripavail/shared"
	"tripavail/shared/cache"
	"tripavail/shared/constant"
	gDto "tripavail/shared/dto"
	"tripavail/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPackage = "catalog:package"
)

// Catalog is the read-only view of listings the reservation engine prices against.
type Catalog interface {
	GetPackage(ctx context.Context, id string) (model.Detail, error)
}

type serviceImpl struct {
	packageRepo repository.Package
	roomRepo    repository.Room
	addOnRepo   repository.AddOn
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(packageRepo repository.Package, roomRepo repository.Room, addOnRepo repository.AddOn, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		packageRepo: packageRepo,
		roomRepo:    roomRepo,
		addOnRepo:   addOnRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) GetPackage(ctx context.Context, id string) (res model.Detail, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPackage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPackage, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for package")

		return res, nil
	}

	pkg, err := s.packageRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("package_id", id).Msg("failed to get package")

		return res, fmt.Errorf("failed to get package: %w", err)
	}

	if pkg.ID == constant.Empty {
		return res, failure.NotFound("package not found") //nolint:wrapcheck
	}

	byPackage := shared.FilterByID(id, model.FieldPackageID, constant.Empty)
	ordered := gDto.QueryParams{SortBy: constant.FieldCreatedAt + ", " + model.FieldID, SortDir: gDto.SortDirAsc}

	rooms, err := s.roomRepo.GetAll(ctx, ordered, byPackage)
	if err != nil {
		log.Error().Err(err).Str("package_id", id).Msg("failed to get package rooms")

		return res, fmt.Errorf("failed to get package rooms: %w", err)
	}

	addOns, err := s.addOnRepo.GetAll(ctx, ordered, byPackage)
	if err != nil {
		log.Error().Err(err).Str("package_id", id).Msg("failed to get package add-ons")

		return res, fmt.Errorf("failed to get package add-ons: %w", err)
	}

	res = model.Detail{Package: pkg, Rooms: rooms, AddOns: addOns}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to save package to cache")
	}

	return res, nil
}
