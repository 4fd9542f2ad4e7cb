package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"tripavail/infras/otel"
	"tripavail/internal/domains/idempotency/model"
	"tripavail/internal/domains/idempotency/repository"
	"tripavail/shared"
	"tripavail/shared/cache"
	"tripavail/shared/constant"
	gDto "tripavail/shared/dto"
	"tripavail/shared/failure"
	"tripavail/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/blake2b"
)

const (
	cacheIdempotency = "idempotency"
	cacheTTLSeconds  = 24 * 60 * 60
)

var ErrKeyReused = failure.BadRequestFromString("Idempotency key was already used with a different request")

// Result is what a previously seen key resolves to.
type Result struct {
	ResourceID  string `json:"resourceId"`
	RequestHash string `json:"requestHash"`
}

type Idempotency interface {
	// Lookup resolves a key outside any transaction. found is false on a miss.
	Lookup(ctx context.Context, userID string, op model.Operation, key, fingerprint string) (resourceID string, found bool, err error)
	// ReserveTx claims key for resourceID. When the key is already owned it
	// returns the owner's resource id and reserved is false.
	ReserveTx(ctx context.Context, sqltx *sqlx.Tx, userID string, op model.Operation, key, fingerprint, resourceID string) (ownerID string, reserved bool, err error)
	// Remember caches a committed key for the fast path.
	Remember(ctx context.Context, userID string, op model.Operation, key, fingerprint, resourceID string)
}

type serviceImpl struct {
	repo  repository.Idempotency
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Idempotency, cache cache.RedisCache, otel otel.Otel) Idempotency {
	return &serviceImpl{
		repo:  repo,
		cache: cache,
		otel:  otel,
	}
}

// Fingerprint hashes the canonical JSON form of a request.
func Fingerprint(request any) string {
	raw, err := json.Marshal(request)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal request fingerprint")

		return constant.Empty
	}

	sum := blake2b.Sum256(raw)

	return hex.EncodeToString(sum[:])
}

func (s *serviceImpl) Lookup(ctx context.Context, userID string, op model.Operation, key, fingerprint string) (resourceID string, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".idempotency.Lookup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var cached Result

	cacheKey := cacheKeyFor(userID, op, key)
	if cacheErr := s.cache.Get(ctx, cacheKey, &cached); cacheErr == nil {
		if err = matches(cached.RequestHash, fingerprint); err != nil {
			return constant.Empty, false, err
		}

		return cached.ResourceID, true, nil
	} else if !errors.Is(cacheErr, cache.Nil) {
		log.Warn().Err(cacheErr).Str("cacheKey", cacheKey).Msg("idempotency cache unavailable, falling back to database")
	}

	record, err := s.repo.Get(ctx, filterFor(userID, op, key))
	if err != nil {
		log.Error().Err(err).Str("operation", string(op)).Msg("failed to look up idempotency key")

		return constant.Empty, false, fmt.Errorf("failed to look up idempotency key: %w", err)
	}

	if record.ID == constant.Empty {
		return constant.Empty, false, nil
	}

	if err = matches(record.RequestHash, fingerprint); err != nil {
		return constant.Empty, false, err
	}

	s.Remember(ctx, userID, op, key, record.RequestHash, record.ResourceID)

	return record.ResourceID, true, nil
}

func (s *serviceImpl) ReserveTx(ctx context.Context, sqltx *sqlx.Tx, userID string, op model.Operation, key, fingerprint, resourceID string) (ownerID string, reserved bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".idempotency.ReserveTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record := model.Record{
		ID:             uuid.NewString(),
		UserID:         userID,
		Operation:      op,
		IdempotencyKey: key,
		ResourceID:     resourceID,
		RequestHash:    fingerprint,
		CreatedAt:      timezone.Now(),
	}

	inserted, err := s.repo.InsertIfAbsentTx(ctx, sqltx, record)
	if err != nil {
		log.Error().Err(err).Str("operation", string(op)).Msg("failed to reserve idempotency key")

		return constant.Empty, false, fmt.Errorf("failed to reserve idempotency key: %w", err)
	}

	if inserted {
		return resourceID, true, nil
	}

	existing, err := s.repo.GetTx(ctx, sqltx, filterFor(userID, op, key))
	if err != nil {
		log.Error().Err(err).Str("operation", string(op)).Msg("failed to read idempotency key owner")

		return constant.Empty, false, fmt.Errorf("failed to read idempotency key owner: %w", err)
	}

	if err = matches(existing.RequestHash, fingerprint); err != nil {
		return constant.Empty, false, err
	}

	log.Info().Str("operation", string(op)).Str("resource_id", existing.ResourceID).Msg("idempotent replay")

	return existing.ResourceID, false, nil
}

func (s *serviceImpl) Remember(ctx context.Context, userID string, op model.Operation, key, fingerprint, resourceID string) {
	cacheKey := cacheKeyFor(userID, op, key)

	if err := s.cache.Save(ctx, cacheKey, Result{ResourceID: resourceID, RequestHash: fingerprint}, cacheTTLSeconds); err != nil {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache idempotency key")
	}
}

func matches(stored, fingerprint string) error {
	if stored != constant.Empty && fingerprint != constant.Empty && stored != fingerprint {
		return ErrKeyReused
	}

	return nil
}

func cacheKeyFor(userID string, op model.Operation, key string) string {
	return shared.BuildCacheKey(cacheIdempotency, userID, string(op), key)
}

func filterFor(userID string, op model.Operation, key string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Value: userID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldOperation, Value: string(op), Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldIdempotencyKey, Value: key, Operator: gDto.FilterOperatorEq},
		},
	}
}
