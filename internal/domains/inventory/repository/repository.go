package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"tripavail/infras/otel"
	"tripavail/infras/postgres"
	"tripavail/internal/domains/inventory/model"
	"tripavail/shared/constant"
	gDto "tripavail/shared/dto"
	"tripavail/shared/logger"
	gRepo "tripavail/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Inventory interface {
	GetNights(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Night, error)
	DecrementTx(ctx context.Context, sqltx *sqlx.Tx, req model.Request, now time.Time) (bool, error)
	IncrementTx(ctx context.Context, sqltx *sqlx.Tx, claim model.Claim, now time.Time) (bool, error)
	InsertClaimsTx(ctx context.Context, sqltx *sqlx.Tx, claims []model.Claim) error
	ReleaseClaimsTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, now time.Time) ([]model.Claim, error)
	FirmClaimsTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) error
	OverdueBookingIDsTx(ctx context.Context, sqltx *sqlx.Tx, roomIDs []string, dates []time.Time, now time.Time) ([]string, error)
}

type repositoryImpl struct {
	nights gRepo.Repository[model.Night]
	claims gRepo.Repository[model.Claim]
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Inventory {
	return &repositoryImpl{
		nights: gRepo.NewRepository[model.Night](model.NightEntityName, model.NightTableName, model.FieldRoomID, db, otel),
		claims: gRepo.NewRepository[model.Claim](model.ClaimEntityName, model.ClaimTableName, model.FieldID, db, otel),
		otel:   otel,
	}
}

func (r *repositoryImpl) GetNights(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Night, error) {
	return r.nights.GetAll(ctx, params, filter, columns...) //nolint:wrapcheck
}

// DecrementTx takes units from one night only if enough remain. The guarded
// update is atomic, a concurrent hold on the same row waits for our commit.
func (r *repositoryImpl) DecrementTx(ctx context.Context, sqltx *sqlx.Tx, req model.Request, now time.Time) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.DecrementTx")
	defer scope.End()

	query := `UPDATE inventory_nights
		SET available_units = available_units - :units, modified_at = :now
		WHERE room_id = :room_id AND date = :date AND available_units >= :units`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return r.countAffected(ctx, sqltx, query, map[string]any{
		"units":   req.Units,
		"now":     now,
		"room_id": req.RoomID,
		"date":    req.Date,
	})
}

// IncrementTx returns claimed units, never past the night's total.
func (r *repositoryImpl) IncrementTx(ctx context.Context, sqltx *sqlx.Tx, claim model.Claim, now time.Time) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.IncrementTx")
	defer scope.End()

	query := `UPDATE inventory_nights
		SET available_units = available_units + :units, modified_at = :now
		WHERE room_id = :room_id AND date = :date AND available_units + :units <= total_units`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return r.countAffected(ctx, sqltx, query, map[string]any{
		"units":   claim.Units,
		"now":     now,
		"room_id": claim.RoomID,
		"date":    claim.Date,
	})
}

func (r *repositoryImpl) InsertClaimsTx(ctx context.Context, sqltx *sqlx.Tx, claims []model.Claim) error {
	return r.claims.InsertBulkTx(ctx, sqltx, claims) //nolint:wrapcheck
}

// ReleaseClaimsTx marks the booking's open claims released and returns them.
// A second call returns nothing, which makes release idempotent.
func (r *repositoryImpl) ReleaseClaimsTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, now time.Time) ([]model.Claim, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.ReleaseClaimsTx")
	defer scope.End()

	query := `UPDATE inventory_claims
		SET released_at = :now
		WHERE booking_id = :booking_id AND released_at IS NULL
		RETURNING id, booking_id, room_id, date, units, claimed_at, expires_at, released_at`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var claims []model.Claim

	err := r.selectTx(ctx, sqltx, query, map[string]any{"now": now, "booking_id": bookingID}, &claims)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to release inventory claims: %w", err)
	}

	return claims, nil
}

func (r *repositoryImpl) FirmClaimsTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.FirmClaimsTx")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingID, Value: bookingID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldReleasedAt, Operator: gDto.FilterIsNull},
		},
	}

	_, err := r.claims.UpdateTxCount(ctx, sqltx, map[string]any{model.FieldExpiresAt: nil}, filter)

	return err //nolint:wrapcheck
}

// OverdueBookingIDsTx finds holds past their expiry that still pin any of the
// given rooms or dates.
func (r *repositoryImpl) OverdueBookingIDsTx(ctx context.Context, sqltx *sqlx.Tx, roomIDs []string, dates []time.Time, now time.Time) ([]string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.OverdueBookingIDsTx")
	defer scope.End()

	query := `SELECT DISTINCT booking_id FROM inventory_claims
		WHERE released_at IS NULL AND expires_at IS NOT NULL AND expires_at <= :now
		AND room_id = ANY(CAST(:room_ids AS uuid[])) AND date = ANY(CAST(:dates AS date[]))
		ORDER BY booking_id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	formatted := make([]string, len(dates))
	for i, date := range dates {
		formatted[i] = date.Format(time.DateOnly)
	}

	var ids []string

	err := r.selectTx(ctx, sqltx, query, map[string]any{
		"now":      now,
		"room_ids": pq.Array(roomIDs),
		"dates":    pq.Array(formatted),
	}, &ids)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find overdue holds: %w", err)
	}

	return ids, nil
}

func (r *repositoryImpl) countAffected(ctx context.Context, sqltx *sqlx.Tx, query string, args map[string]any) (bool, error) {
	result, err := sqltx.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to update inventory night: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

func (r *repositoryImpl) selectTx(ctx context.Context, sqltx *sqlx.Tx, query string, args map[string]any, dest any) error {
	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, dest, args); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to query inventory: %w", err)
	}

	return nil
}
