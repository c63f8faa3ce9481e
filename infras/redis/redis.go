package redis

import (
	"context"
	"net"
	"time"

	"risecheckout/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Options maps the primary redis settings. A zero PoolSize keeps the
// go-redis default and a non-positive Timeout keeps the go-redis timeouts.
func Options(config *config.Config) *goRedis.Options {
	primary := config.Cache.Redis.Primary

	options := &goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
		PoolSize: primary.PoolSize,
	}

	if primary.Timeout > 0 {
		timeout := time.Duration(primary.Timeout) * time.Millisecond
		options.DialTimeout = timeout
		options.ReadTimeout = timeout
		options.WriteTimeout = timeout
	}

	return options
}

// New connects and pings once. An unreachable redis is fatal at startup.
func New(config *config.Config) *goRedis.Client {
	options := Options(config)
	client := goRedis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", options.Addr).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", options.DB).
		Str("addr", options.Addr).
		Dur("timeout", options.ReadTimeout).
		Msg("Connected to Redis")

	return client
}
