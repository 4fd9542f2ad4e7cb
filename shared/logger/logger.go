package logger

import (
	"io"
	"os"
	"time"
	"tripavail/config"
	"tripavail/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger writes human readable logs in development and JSON elsewhere, so
// production lines carry service and env fields for the log shipper.
func InitLogger(cfg *config.Config) {
	setup(cfg, os.Stdout)
}

func setup(cfg *config.Config, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.Server.Env == constant.ServerEnvDevelopment {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(out).With().
			Timestamp().
			Str("service", cfg.App.Name).
			Str("env", cfg.Server.Env).
			Logger()
	}

	SetLogLevel(cfg)
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies SERVER_LOG_LEVEL. Unset or unknown levels fall back to
// debug in development and info everywhere else.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = defaultLevel(cfg)
		log.Info().Str("loglevel", level.String()).Msg("No valid log level configured, using default.")
	}

	zerolog.SetGlobalLevel(level)
}

func defaultLevel(cfg *config.Config) zerolog.Level {
	if cfg.Server.Env == constant.ServerEnvDevelopment {
		return zerolog.DebugLevel
	}

	return zerolog.InfoLevel
}
