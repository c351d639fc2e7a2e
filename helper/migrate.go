package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"scams/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	migrationSource       = "file://migrations/postgres"
	defaultMigrationTable = "scams_schema_migrations"
)

type Action string

const (
	ActionUp     Action = "up"
	ActionDown   Action = "down"
	ActionStepUp Action = "step-up"
	ActionDrop   Action = "drop"
)

func migrationTable(config *config.Config) string {
	if config.DB.Postgres.MigrationTable != "" {
		return config.DB.Postgres.MigrationTable
	}

	return defaultMigrationTable
}

// ConnectionString targets the write database, migrations never run against a replica.
func ConnectionString(config *config.Config) string {
	return config.PostgresDSN(config.DB.Postgres.Write) + "&x-migrations-table=" + url.QueryEscape(migrationTable(config))
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationSource, ConnectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func apply(mig *migrate.Migrate, action Action) error {
	switch action {
	case ActionUp:
		return mig.Up()
	case ActionDown:
		return mig.Steps(-1)
	case ActionStepUp:
		return mig.Steps(1)
	case ActionDrop:
		return mig.Down()
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}
}

func Runner(config *config.Config, action Action) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := apply(mig, action); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().
		Str("action", string(action)).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Database migrations completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}
