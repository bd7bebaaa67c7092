package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fintrack/src/core/domain"
	"fintrack/src/infra/config"
	"fintrack/src/infra/logger"
)

const configHint = "Set DATABASE_URL or DB_NAME/DB_USER/DB_PASSWORD/DB_HOST/DB_PORT env vars " +
	"or create the database if it does not exist."

// Opener hands out a connection the caller must close.
type Opener interface {
	Open(ctx context.Context) (*pgx.Conn, error)
}

// ResolveFunc produces the settings for one connection attempt.
type ResolveFunc func() (config.DatabaseConfig, error)

// ConnectFunc dials Postgres with a parsed configuration.
type ConnectFunc func(ctx context.Context, cfg *pgx.ConnConfig) (*pgx.Conn, error)

// Factory opens a fresh connection per call. Settings are re-read from the
// environment each time so a changed DATABASE_URL takes effect without restart.
type Factory struct {
	resolve ResolveFunc
	connect ConnectFunc
	log     *slog.Logger
}

// NewFactory returns a Factory reading config.LoadDatabase and dialing with pgx.
func NewFactory(log *slog.Logger) *Factory {
	return &Factory{
		resolve: config.LoadDatabase,
		connect: pgx.ConnectConfig,
		log:     logger.WithComponent(log, "db"),
	}
}

// WithResolver replaces the settings source.
func (f *Factory) WithResolver(resolve ResolveFunc) *Factory {
	f.resolve = resolve
	return f
}

// WithConnector replaces the dialer.
func (f *Factory) WithConnector(connect ConnectFunc) *Factory {
	f.connect = connect
	return f
}

// Open makes a single connection attempt. Connectivity failures are returned
// as *domain.DatabaseConnectionError with the driver error as cause; every
// other error is returned untouched.
func (f *Factory) Open(ctx context.Context) (*pgx.Conn, error) {
	cfg, err := f.resolve()
	if err != nil {
		return nil, err
	}

	connCfg, err := pgx.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, f.classify(ctx, cfg, err)
	}

	conn, err := f.connect(ctx, connCfg)
	if err != nil {
		return nil, f.classify(ctx, cfg, err)
	}
	return conn, nil
}

// Ping opens a connection, pings it and closes it again.
func (f *Factory) Ping(ctx context.Context) error {
	return WithConn(ctx, f, func(conn *pgx.Conn) error {
		return conn.Ping(ctx)
	})
}

func (f *Factory) classify(ctx context.Context, cfg config.DatabaseConfig, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if !isConnectivityError(err) {
		return err
	}

	logger.Error(f.log, "postgres connection failed",
		"target", cfg.LogTarget(),
		"error", err,
		"hint", configHint,
	)

	return &domain.DatabaseConnectionError{
		Message: connectionErrorMessage(cfg),
		Cause:   err,
	}
}

func connectionErrorMessage(cfg config.DatabaseConfig) string {
	if cfg.UsesURL() {
		return "Unable to connect using DATABASE_URL. Verify the connection string or " +
			"update it to point at an existing database."
	}
	return fmt.Sprintf(
		"Unable to connect to Postgres database '%s' on %s:%s. "+
			"Update DB_* env vars or create the database using the provided SQL.",
		cfg.Name, cfg.Host, cfg.Port,
	)
}

// isConnectivityError covers unreachable hosts, rejected credentials, missing
// databases and settings the driver could not parse.
func isConnectivityError(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var parseErr *pgconn.ParseConfigError
	return errors.As(err, &parseErr)
}

// WithConn opens a connection, runs fn with it and closes it on every exit
// path, including panics in fn.
func WithConn(ctx context.Context, o Opener, fn func(conn *pgx.Conn) error) error {
	conn, err := o.Open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// Close must still send Terminate after the request context is gone.
		_ = conn.Close(context.WithoutCancel(ctx))
	}()

	return fn(conn)
}
