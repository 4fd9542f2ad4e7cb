package postgres

//nolint:revive
import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"
	"tripavail/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./postgres.go -destination=./mocks/postgres_mock.go -package=mocks

const driverName = "postgres"

// Connection splits reads from writes. Both pools may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// TxFunc runs inside a single write transaction.
type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

// Transactor opens read-committed transactions on the write pool.
// A TxFunc returning an error rolls back everything it did.
type Transactor interface {
	WithTransaction(ctx context.Context, fn TxFunc) error
}

func NewTransactor(conn *Connection) Transactor {
	return conn
}

func (c *Connection) WithTransaction(ctx context.Context, fn TxFunc) (err error) {
	tx, err := c.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Close releases both pools.
func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db != nil {
			errs = append(errs, db.Close())
		}
	}

	return errors.Join(errs...)
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  open(cfg, "read", cfg.DB.Postgres.Read),
		Write: open(cfg, "write", cfg.DB.Postgres.Write),
	}
}

// DSN renders a postgres URL for node. The credentials are escaped, and the
// configured prefix is prepended to the database name.
func DSN(cfg *config.Config, node config.PostgresNode, extra url.Values) string {
	query := url.Values{}
	query.Set("sslmode", node.SSLMode)

	if node.Timezone != "" {
		query.Set("timezone", node.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(node.Username, node.Password),
		Host:     net.JoinHostPort(node.Host, node.Port),
		Path:     "/" + cfg.DB.Postgres.Prefix + node.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// open retries the connection MaxRetry times and gives up with a fatal log.
func open(cfg *config.Config, role string, node config.PostgresNode) *sqlx.DB {
	settings := cfg.DB.Postgres
	wait := time.Duration(settings.RetryWaitTime) * time.Second
	logger := log.With().Str("role", role).Str("host", node.Host).Str("db", settings.Prefix+node.Name).Logger()

	var err error

	for attempt := 1; attempt <= max(settings.MaxRetry, 1); attempt++ {
		var db *sqlx.DB

		db, err = sqlx.Connect(driverName, DSN(cfg, node, nil))
		if err == nil {
			db.SetMaxOpenConns(settings.MaxOpenConns)
			db.SetMaxIdleConns(settings.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(settings.ConnMaxLifetime) * time.Second)

			logger.Info().Msg("connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("failed connecting to database, retrying")
		time.Sleep(wait)
	}

	logger.Fatal().Err(err).Msg("giving up connecting to database")

	return nil
}
