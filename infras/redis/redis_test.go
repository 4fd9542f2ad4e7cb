package redis_test

import (
	"testing"
	"time"
	"tripavail/config"
	"tripavail/infras/redis"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "cache"
	cfg.Cache.Redis.Primary.Port = "6380"
	cfg.Cache.Redis.Primary.Password = "secret"
	cfg.Cache.Redis.Primary.DB = 2
	cfg.Cache.Redis.PoolSize = 20
	cfg.Cache.Redis.DialTimeoutSeconds = 5

	options := redis.Options(cfg)

	assert.Equal(t, "cache:6380", options.Addr)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, 2, options.DB)
	assert.Equal(t, 20, options.PoolSize)
	assert.Equal(t, 5*time.Second, options.DialTimeout)
}
