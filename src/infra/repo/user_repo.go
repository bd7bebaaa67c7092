package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"fintrack/src/core/domain"
	"fintrack/src/core/ports"
)

const userColumns = `user_id, first_name, last_name, email, password, created`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.Created); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, in ports.NewUser) (*domain.User, error) {
	const q = `
		INSERT INTO users (first_name, last_name, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	var user *domain.User
	err := r.withConn(ctx, "create_user", func(conn *pgx.Conn) error {
		var err error
		user, err = scanUser(conn.QueryRow(ctx, q, in.FirstName, in.LastName, in.Email, in.Password))
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("email already registered")
		}
		return nil, err
	}
	return user, nil
}

// FindUserByCredentials compares the stored password as plain text.
func (r *PostgresRepository) FindUserByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	const q = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND password = $2
	`
	var user *domain.User
	err := r.withConn(ctx, "find_user_by_credentials", func(conn *pgx.Conn) error {
		var err error
		user, err = scanUser(conn.QueryRow(ctx, q, email, password))
		return err
	})
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
