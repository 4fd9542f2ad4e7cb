package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tripavail/infras/otel"
	"tripavail/infras/postgres"
	"tripavail/internal/domains/ledger/model"
	"tripavail/shared/constant"
	gDto "tripavail/shared/dto"
	"tripavail/shared/logger"
	gRepo "tripavail/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Ledger only ever inserts. Entries are never updated or deleted.
type Ledger interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Entry, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, entries []model.Entry) error
	Totals(ctx context.Context, account string) (model.Totals, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Entry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Ledger {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Entry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Totals(ctx context.Context, account string) (model.Totals, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ledger.Totals")
	defer scope.End()

	query := `SELECT
			COALESCE(SUM(amount) FILTER (WHERE credit_account = :account), 0) AS credits,
			COALESCE(SUM(amount) FILTER (WHERE debit_account = :account), 0) AS debits,
			COUNT(DISTINCT booking_id) AS booking_count
		FROM ledger_entries
		WHERE credit_account = :account OR debit_account = :account`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var totals model.Totals

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return totals, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &totals, map[string]any{"account": account}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return totals, fmt.Errorf("failed to sum ledger entries: %w", err)
	}

	return totals, nil
}
