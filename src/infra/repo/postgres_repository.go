package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fintrack/src/core/ports"
	"fintrack/src/infra/db"
	"fintrack/src/infra/logger"
)

var _ ports.FinanceRepository = (*PostgresRepository)(nil)

// PostgresRepository implements FinanceRepository using pgx.
type PostgresRepository struct {
	db  *db.Factory
	log *slog.Logger
}

// NewPostgresRepository constructs a repository that opens one connection
// per call through the given factory.
func NewPostgresRepository(factory *db.Factory, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		db:  factory,
		log: logger.WithComponent(log, "repo"),
	}
}

// Health opens a connection and pings it.
func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *PostgresRepository) withConn(ctx context.Context, op string, fn func(conn *pgx.Conn) error) error {
	logger.Debug(r.log, "executing statement", "op", op)
	return db.WithConn(ctx, r.db, fn)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
