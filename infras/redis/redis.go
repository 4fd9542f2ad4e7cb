package redis

import (
	"context"
	"net"
	"time"
	"tripavail/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const retryWait = time.Second

// Options maps the cache section of the config onto client options.
func Options(config *config.Config) *goRedis.Options {
	primary := config.Cache.Redis.Primary

	return &goRedis.Options{
		Addr:        net.JoinHostPort(primary.Host, primary.Port),
		Password:    primary.Password,
		DB:          primary.DB,
		PoolSize:    config.Cache.Redis.PoolSize,
		DialTimeout: time.Duration(config.Cache.Redis.DialTimeoutSeconds) * time.Second,
	}
}

// New connects to the primary node, retrying the first ping. Holds, idempotency
// replays and rate limits all depend on it, so the process does not start without it.
func New(config *config.Config) *goRedis.Client {
	options := Options(config)
	client := goRedis.NewClient(options)

	attempts := max(config.Cache.Redis.MaxRetry, 1)

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), options.DialTimeout+time.Second)
		err = client.Ping(ctx).Err()

		cancel()

		if err == nil {
			break
		}

		log.Warn().Err(err).Int("attempt", attempt).Str("addr", options.Addr).Msg("Redis not reachable, retrying")
		time.Sleep(retryWait)
	}

	if err != nil {
		log.Fatal().Err(err).Str("addr", options.Addr).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", options.DB).
		Str("addr", options.Addr).
		Int("pool_size", options.PoolSize).
		Msg("Connected to Redis")

	return client
}
