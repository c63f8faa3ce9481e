package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"risecheckout/config"
	"risecheckout/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

type Action string

const (
	ActionUp      Action = "up"
	ActionDown    Action = "down"
	ActionStepUp  Action = "step-up"
	ActionDrop    Action = "drop"
	ActionVersion Action = "version"
)

const migrationSource = "file://migrations/postgres"

var ErrUnknownAction = errors.New("unknown migration action")

// connectionString targets the write database. The migrations table name is
// optional.
func connectionString(config *config.Config) string {
	params := url.Values{"sslmode": {config.DB.Postgres.Write.SSLMode}}
	if table := config.DB.Postgres.MigrationTable; table != "" {
		params.Set("x-migrations-table", table)
	}

	return postgres.DSN(config.DB.Postgres.Write, config.DB.Postgres.Prefix, params)
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationSource, connectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func ParseAction(value string) (Action, error) {
	switch action := Action(value); action {
	case ActionUp, ActionDown, ActionStepUp, ActionDrop, ActionVersion:
		return action, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, value)
	}
}

func Runner(config *config.Config, action Action) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}
	case ActionDown:
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}
	case ActionStepUp:
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}
	case ActionDrop:
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}
	case ActionVersion:
		version, dirty, err := mig.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", err)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current database migration version")

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	log.Info().Str("action", string(action)).Msg("Database migration finished")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}
