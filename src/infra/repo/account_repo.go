package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"fintrack/src/core/domain"
	"fintrack/src/core/ports"
)

const accountColumns = `account_id, user_id, account_name, account_type, current_balance`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	if err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.CurrentBalance); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepository) ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	const q = `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = $1
		ORDER BY account_id ASC
	`
	accounts := []domain.Account{}
	err := r.withConn(ctx, "list_accounts", func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			a, err := scanAccount(rows)
			if err != nil {
				return err
			}
			accounts = append(accounts, *a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *PostgresRepository) CreateAccount(ctx context.Context, in ports.AccountInput) (*domain.Account, error) {
	const q = `
		INSERT INTO accounts (user_id, account_name, account_type, current_balance)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + accountColumns

	var account *domain.Account
	err := r.withConn(ctx, "create_account", func(conn *pgx.Conn) error {
		var err error
		account, err = scanAccount(conn.QueryRow(ctx, q, in.UserID, in.Name, in.Type, in.CurrentBalance))
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (r *PostgresRepository) UpdateAccount(ctx context.Context, accountID int64, in ports.AccountInput) (*domain.Account, error) {
	const q = `
		UPDATE accounts
		SET account_name = $2, account_type = $3, current_balance = $4
		WHERE account_id = $1
		RETURNING ` + accountColumns

	var account *domain.Account
	err := r.withConn(ctx, "update_account", func(conn *pgx.Conn) error {
		var err error
		account, err = scanAccount(conn.QueryRow(ctx, q, accountID, in.Name, in.Type, in.CurrentBalance))
		return err
	})
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NewNotFoundError("account")
		}
		return nil, err
	}
	return account, nil
}

func (r *PostgresRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	const q = `DELETE FROM accounts WHERE account_id = $1`

	return r.withConn(ctx, "delete_account", func(conn *pgx.Conn) error {
		res, err := conn.Exec(ctx, q, accountID)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return domain.NewNotFoundError("account")
		}
		return nil
	})
}
