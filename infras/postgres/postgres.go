package postgres

//nolint:revive
import (
	"errors"
	"scams/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxIdleTime   = 5 * time.Minute
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  connect(config, "read", config.DB.Postgres.Read),
		Write: connect(config, "write", config.DB.Postgres.Write),
	}
}

// connect dials the endpoint, retrying MaxRetry times. A nil pool means every attempt failed.
func connect(cfg *config.Config, name string, endpoint config.PostgresEndpoint) *sqlx.DB {
	dsn := cfg.PostgresDSN(endpoint)
	dbName := cfg.DB.Postgres.Prefix + endpoint.Name
	wait := time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second

	for attempt := 1; attempt <= cfg.DB.Postgres.MaxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)
			db.SetConnMaxIdleTime(postgresConnMaxIdleTime)

			log.Info().
				Str("name", name).
				Str("host", endpoint.Host).
				Str("dbName", dbName).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("name", name).
			Str("host", endpoint.Host).
			Str("dbName", dbName).
			Int("attempt", attempt).
			Msg("Failed connecting to database, retrying")

		time.Sleep(wait)
	}

	return nil
}

// Close releases both connection pools.
func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
