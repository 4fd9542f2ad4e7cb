package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"tripavail/config"
	"tripavail/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

// Direction names a migration action accepted by cmd/migrate.
type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionStepUp  Direction = "step-up"
	DirectionDrop    Direction = "drop"
	DirectionVersion Direction = "version"
)

var ErrUnknownDirection = errors.New("unknown migration direction")

// Directions lists every supported action, in help order.
var Directions = []Direction{DirectionUp, DirectionDown, DirectionStepUp, DirectionDrop, DirectionVersion}

// DatabaseURL builds the migrate URL for the write node.
func DatabaseURL(cfg *config.Config) string {
	var extra url.Values

	if cfg.DB.Postgres.MigrationTable != "" {
		extra = url.Values{"x-migrations-table": {cfg.DB.Postgres.MigrationTable}}
	}

	return postgres.DSN(cfg, cfg.DB.Postgres.Write, extra)
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(cfg.DB.Postgres.MigrationSource, DatabaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Run applies direction against the write database. ErrNoChange is not an error.
func Run(cfg *config.Config, direction Direction) error {
	if !slices.Contains(Directions, direction) {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	mig, err := newMigrate(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	switch direction {
	case DirectionUp:
		err = mig.Up()
	case DirectionDown:
		err = mig.Steps(-1)
	case DirectionStepUp:
		err = mig.Steps(1)
	case DirectionDrop:
		err = mig.Down()
	case DirectionVersion:
		return logVersion(mig)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", direction, err)
	}

	log.Info().Str("direction", string(direction)).Str("database", cfg.DB.Postgres.Prefix+cfg.DB.Postgres.Write.Name).Msg("Database migration finished")

	return logVersion(mig)
}

func logVersion(mig *migrate.Migrate) error {
	version, dirty, err := mig.Version()

	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		log.Info().Msg("Database has no migrations applied")

		return nil
	case err != nil:
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migration version")

	return nil
}

func Up(cfg *config.Config) error {
	return Run(cfg, DirectionUp)
}
