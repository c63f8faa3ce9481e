package redis_test

import (
	"testing"
	"time"

	"risecheckout/config"
	"risecheckout/infras/redis"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "cache.internal"
	cfg.Cache.Redis.Primary.Port = "6380"
	cfg.Cache.Redis.Primary.DB = 2
	cfg.Cache.Redis.Primary.PoolSize = 20
	cfg.Cache.Redis.Primary.Timeout = 250

	options := redis.Options(cfg)

	assert.Equal(t, "cache.internal:6380", options.Addr)
	assert.Equal(t, 2, options.DB)
	assert.Equal(t, 20, options.PoolSize)
	assert.Equal(t, 250*time.Millisecond, options.DialTimeout)
	assert.Equal(t, 250*time.Millisecond, options.ReadTimeout)
	assert.Equal(t, 250*time.Millisecond, options.WriteTimeout)
}

func TestOptions_KeepsClientDefaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "::1"
	cfg.Cache.Redis.Primary.Port = "6379"

	options := redis.Options(cfg)

	assert.Equal(t, "[::1]:6379", options.Addr)
	assert.Zero(t, options.ReadTimeout)
	assert.Zero(t, options.PoolSize)
}
