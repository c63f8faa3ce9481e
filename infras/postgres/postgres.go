package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"risecheckout/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// sessionTimezone pins timestamptz output to UTC regardless of server defaults.
const sessionTimezone = "UTC"

var errNotConnected = errors.New("database not connected")

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			return fmt.Errorf("%s: %w", name, errNotConnected)
		}

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to ping %s database: %w", name, err)
		}
	}

	return nil
}

func (c *Connection) Close() {
	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connection")
		}
	}
}

func New(config *config.Config) *Connection {
	postgres := config.DB.Postgres

	return &Connection{
		Read:  connect("read", DSN(postgres.Read, postgres.Prefix, sessionParams(postgres.Read)), postgres.MaxRetry, postgres.RetryWaitTime),
		Write: connect("write", DSN(postgres.Write, postgres.Prefix, sessionParams(postgres.Write)), postgres.MaxRetry, postgres.RetryWaitTime),
	}
}

func sessionParams(endpoint config.PostgresEndpoint) url.Values {
	return url.Values{
		"sslmode":  {endpoint.SSLMode},
		"timezone": {sessionTimezone},
	}
}

// DSN builds a postgres URL for endpoint. prefix is prepended to the
// database name. Credentials are escaped.
func DSN(endpoint config.PostgresEndpoint, prefix string, params url.Values) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + prefix + endpoint.Name,
		RawQuery: params.Encode(),
	}

	return dsn.String()
}

// connect retries up to maxRetry times, waiting waitTime seconds between
// attempts. It returns nil when every attempt fails.
func connect(name, dsn string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			log.Info().Str("name", name).Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
