package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"
	"tripavail/infras/metrics"
	"tripavail/infras/otel"
	"tripavail/internal/domains/inventory/model"
	"tripavail/internal/domains/inventory/repository"
	"tripavail/shared/constant"
	gDto "tripavail/shared/dto"
	"tripavail/shared/failure"
	"tripavail/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var ErrInvalidRange = failure.BadRequestFromString("from must be before to")

// Inventory guards per-night room capacity. Every *Tx method runs inside the
// caller's transaction so a claim commits or rolls back with its booking.
type Inventory interface {
	ClaimTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, requests []model.Request, expiresAt *time.Time) error
	ReleaseTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (int, error)
	FirmTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) error
	OverdueHoldsTx(ctx context.Context, sqltx *sqlx.Tx, requests []model.Request, now time.Time) ([]string, error)
	Availability(ctx context.Context, roomID string, from, to time.Time) ([]model.Night, error)
}

type serviceImpl struct {
	repo    repository.Inventory
	metrics metrics.Metrics
	otel    otel.Otel
}

func New(repo repository.Inventory, metrics metrics.Metrics, otel otel.Otel) Inventory {
	return &serviceImpl{
		repo:    repo,
		metrics: metrics,
		otel:    otel,
	}
}

// ClaimTx decrements every requested night or none of them. The first night
// that lacks capacity fails the whole claim and the caller rolls back.
func (s *serviceImpl) ClaimTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, requests []model.Request, expiresAt *time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.ClaimTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	normalized := model.Normalize(requests)
	if len(normalized) == 0 {
		return failure.BadRequestFromString("no nights to reserve") //nolint:wrapcheck
	}

	now := timezone.Now()
	claims := make([]model.Claim, 0, len(normalized))

	for _, req := range normalized {
		ok, err := s.repo.DecrementTx(ctx, sqltx, req, now)
		if err != nil {
			return fmt.Errorf("failed to claim inventory: %w", err)
		}

		if !ok {
			s.metrics.ObserveInventoryRejection()
			log.Info().Str("booking_id", bookingID).Str("room_id", req.RoomID).Time("date", req.Date).Msg("insufficient inventory")

			return failure.BadRequestFromString(fmt.Sprintf("Insufficient inventory for room %s on %s", req.RoomID, req.Date.Format(constant.DateOnlyFormat))) //nolint:wrapcheck
		}

		claims = append(claims, model.Claim{
			ID:        uuid.NewString(),
			BookingID: bookingID,
			RoomID:    req.RoomID,
			Date:      req.Date,
			Units:     req.Units,
			ClaimedAt: now,
			ExpiresAt: expiresAt,
		})
	}

	if err = s.repo.InsertClaimsTx(ctx, sqltx, claims); err != nil {
		return fmt.Errorf("failed to record inventory claims: %w", err)
	}

	return nil
}

// ReleaseTx restores what the booking claimed and reports how many units came
// back. Releasing twice restores nothing the second time.
func (s *serviceImpl) ReleaseTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (released int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.ReleaseTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()

	claims, err := s.repo.ReleaseClaimsTx(ctx, sqltx, bookingID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to release inventory: %w", err)
	}

	slices.SortFunc(claims, func(a, b model.Claim) int {
		if c := cmp.Compare(a.RoomID, b.RoomID); c != 0 {
			return c
		}

		return a.Date.Compare(b.Date)
	})

	for _, claim := range claims {
		ok, err := s.repo.IncrementTx(ctx, sqltx, claim, now)
		if err != nil {
			return 0, fmt.Errorf("failed to restore inventory: %w", err)
		}

		if !ok {
			log.Warn().Str("booking_id", bookingID).Str("room_id", claim.RoomID).Time("date", claim.Date).Msg("inventory already at capacity, skipping restore")

			continue
		}

		released += claim.Units
	}

	return released, nil
}

func (s *serviceImpl) FirmTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.FirmTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.FirmClaimsTx(ctx, sqltx, bookingID); err != nil {
		return fmt.Errorf("failed to firm inventory claims: %w", err)
	}

	return nil
}

// OverdueHoldsTx lists expired holds still pinning any of the requested nights.
func (s *serviceImpl) OverdueHoldsTx(ctx context.Context, sqltx *sqlx.Tx, requests []model.Request, now time.Time) (ids []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.OverdueHoldsTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	normalized := model.Normalize(requests)
	if len(normalized) == 0 {
		return nil, nil
	}

	roomIDs := make([]string, 0, len(normalized))
	dates := make([]time.Time, 0, len(normalized))

	for _, req := range normalized {
		if !slices.Contains(roomIDs, req.RoomID) {
			roomIDs = append(roomIDs, req.RoomID)
		}

		if !slices.ContainsFunc(dates, req.Date.Equal) {
			dates = append(dates, req.Date)
		}
	}

	ids, err = s.repo.OverdueBookingIDsTx(ctx, sqltx, roomIDs, dates, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find overdue holds: %w", err)
	}

	return ids, nil
}

func (s *serviceImpl) Availability(ctx context.Context, roomID string, from, to time.Time) (res []model.Night, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	nights := model.Nights(from, to)
	if len(nights) == 0 {
		return nil, ErrInvalidRange
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{ArgName: "date_from", Field: model.FieldDate, Value: nights[0], Operator: gDto.FilterOperatorGreaterEq},
			gDto.Filter{ArgName: "date_to", Field: model.FieldDate, Value: nights[len(nights)-1], Operator: gDto.FilterOperatorLessEq},
		},
	}

	res, err = s.repo.GetNights(ctx, gDto.QueryParams{SortBy: model.FieldDate, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to get availability")

		return nil, fmt.Errorf("failed to get availability: %w", err)
	}

	return res, nil
}
