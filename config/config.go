package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	// HoldTTLMinutes is fixed. A hold always expires 15 minutes after it is placed.
	HoldTTLMinutes = 15
)

var ErrInvalidHoldTTL = errors.New("BOOKING_HOLD_TTL_MINUTES must be 15")

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"     default:"tripavail"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
			PoolSize           int `envconfig:"POOL_SIZE"            default:"20"`
			DialTimeoutSeconds int `envconfig:"DIAL_TIMEOUT_SECONDS" default:"5"`
			MaxRetry           int `envconfig:"MAX_RETRY"            default:"3"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry        int          `envconfig:"MAX_RETRY"`
			RetryWaitTime   int          `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable  string       `envconfig:"MIGRATION_TABLE"`
			MigrationSource string       `envconfig:"MIGRATION_SOURCE" default:"file://migrations/postgres"`
			AutoMigrate     bool         `envconfig:"AUTO_MIGRATE"`
			Prefix          string       `envconfig:"PREFIX"`
			MaxOpenConns    int          `envconfig:"MAX_OPEN_CONNS" default:"10"`
			MaxIdleConns    int          `envconfig:"MAX_IDLE_CONNS" default:"10"`
			ConnMaxLifetime int          `envconfig:"CONN_MAX_LIFETIME_SECONDS" default:"300"`
			Read            PostgresNode `envconfig:"READ"`
			Write           PostgresNode `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topic struct {
			BookingEvents string `envconfig:"BOOKING_EVENTS" default:"booking.events"`
		} `envconfig:"TOPIC"`
	} `envconfig:"KAFKA"`

	Booking struct {
		QuoteTTLHours  int     `envconfig:"QUOTE_TTL_HOURS"  default:"24"`
		HoldTTLMinutes int     `envconfig:"HOLD_TTL_MINUTES" default:"15"`
		TaxRate        float64 `envconfig:"TAX_RATE"         default:"0.10"`
		CommissionRate float64 `envconfig:"COMMISSION_RATE"  default:"0.10"`
		Currency       string  `envconfig:"CURRENCY"         default:"USD"`
		Reaper         struct {
			Enable          bool `envconfig:"ENABLE"           default:"true"`
			IntervalSeconds int  `envconfig:"INTERVAL_SECONDS" default:"60"`
			BatchSize       int  `envconfig:"BATCH_SIZE"       default:"100"`
		} `envconfig:"REAPER"`
	} `envconfig:"BOOKING"`

	Payment struct {
		Processor struct {
			Driver         string `envconfig:"DRIVER"          default:"sandbox"`
			BaseURL        string `envconfig:"BASE_URL"`
			SecretKey      string `envconfig:"SECRET_KEY"`
			TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
		} `envconfig:"PROCESSOR"`
	} `envconfig:"PAYMENT"`

	Metrics struct {
		Enable bool   `envconfig:"ENABLE"        default:"true"`
		Path   string `envconfig:"ENDPOINT_PATH" default:"/metrics"`
	} `envconfig:"METRICS"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			Region            string `envconfig:"REGION"`
			PresignTTLSeconds int    `envconfig:"PRESIGN_TTL_SECONDS" default:"900"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

// PostgresNode is one side of the read/write split.
type PostgresNode struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

// Validate rejects settings the reservation engine cannot honour.
func (c *Config) Validate() error {
	if c.Booking.HoldTTLMinutes != HoldTTLMinutes {
		return ErrInvalidHoldTTL
	}

	return nil
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		if err = conf.Validate(); err != nil {
			log.Fatal().Err(err).Msg("Invalid service configuration")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
