package postgres

//nolint:revive
import (
	"aircon/config"
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection holds the write pool used for intake and staff updates and the read pool used for
// listings.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one database server as configured for the read or the write side.
type Endpoint struct {
	Name     string
	Host     string
	Port     string
	Username string
	Password string
	Database string
	SSLMode  string
}

func New(config *config.Config) *Connection {
	read, write := Endpoints(config)

	return &Connection{
		Read:  connect(read, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
		Write: connect(write, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
	}
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if c == nil || c.Read == nil || c.Write == nil {
		return errors.New("database connection is not initialized")
	}

	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping write database: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping read database: %w", err)
	}

	return nil
}

// Close releases both pools.
func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

// Endpoints resolves the read and write servers, applying the database name prefix.
func Endpoints(config *config.Config) (read, write Endpoint) {
	pg := config.DB.Postgres

	return endpoint("read", pg.Prefix, pg.Read), endpoint("write", pg.Prefix, pg.Write)
}

func endpoint(name, prefix string, server config.DatabaseServer) Endpoint {
	return Endpoint{
		Name:     name,
		Host:     server.Host,
		Port:     server.Port,
		Username: server.Username,
		Password: server.Password,
		Database: prefix + server.Name,
		SSLMode:  server.SSLMode,
	}
}

// URL renders the endpoint as a postgres connection URL with credentials escaped.
func (e Endpoint) URL() *url.URL {
	query := url.Values{}
	if e.SSLMode != "" {
		query.Set("sslmode", e.SSLMode)
	}

	return &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.Database,
		RawQuery: query.Encode(),
	}
}

func (e Endpoint) DSN() string {
	return e.URL().String()
}

func connect(endpoint Endpoint, maxRetry, waitTime int) *sqlx.DB {
	logger := log.With().
		Str("name", endpoint.Name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", endpoint.Database).
		Logger()

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", endpoint.DSN())
		if err == nil {
			logger.Info().Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		logger.Error().Err(err).Int("attempt", retry+1).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	logger.Fatal().Int("maxRetry", maxRetry).Msg("Giving up connecting to database")

	return nil
}
