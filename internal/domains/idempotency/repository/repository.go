package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tripavail/infras/otel"
	"tripavail/infras/postgres"
	"tripavail/internal/domains/idempotency/model"
	"tripavail/shared/constant"
	gDto "tripavail/shared/dto"
	"tripavail/shared/logger"
	gRepo "tripavail/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Idempotency interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Record, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Record, error)
	InsertIfAbsentTx(ctx context.Context, sqltx *sqlx.Tx, record model.Record) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Record]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Idempotency {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Record](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// InsertIfAbsentTx reports false when another request already owns the key.
// A concurrent insert of the same key blocks on the unique index until the
// owning transaction ends, so the first committer wins.
func (r *repositoryImpl) InsertIfAbsentTx(ctx context.Context, sqltx *sqlx.Tx, record model.Record) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".idempotency.InsertIfAbsentTx")
	defer scope.End()

	query := `INSERT INTO idempotency_keys (id, user_id, operation, idempotency_key, resource_id, request_hash, created_at)
		VALUES (:id, :user_id, :operation, :idempotency_key, :resource_id, :request_hash, :created_at)
		ON CONFLICT (user_id, operation, idempotency_key) DO NOTHING`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.NamedExecContext(ctx, query, record)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to insert idempotency key: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}
