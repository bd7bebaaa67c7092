package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"fintrack/src/core/domain"
	"fintrack/src/core/ports"
)

const transactionColumns = `transaction_id, user_id, account_id, category_id, transaction_date, amount, description`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	if err := row.Scan(&t.ID, &t.UserID, &t.AccountID, &t.CategoryID, &t.Date, &t.Amount, &t.Description); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTransactions returns the newest transactions first.
func (r *PostgresRepository) ListTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	const q = `
		SELECT ` + transactionColumns + `
		FROM transaction
		WHERE user_id = $1
		ORDER BY transaction_date DESC, transaction_id DESC
	`
	transactions := []domain.Transaction{}
	err := r.withConn(ctx, "list_transactions", func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			t, err := scanTransaction(rows)
			if err != nil {
				return err
			}
			transactions = append(transactions, *t)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *PostgresRepository) CreateTransaction(ctx context.Context, in ports.TransactionInput) (*domain.Transaction, error) {
	const q = `
		INSERT INTO transaction (user_id, account_id, category_id, transaction_date, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + transactionColumns

	var tx *domain.Transaction
	err := r.withConn(ctx, "create_transaction", func(conn *pgx.Conn) error {
		var err error
		tx, err = scanTransaction(conn.QueryRow(ctx, q,
			in.UserID, in.AccountID, in.CategoryID, in.Date, in.Amount, in.Description,
		))
		return err
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (r *PostgresRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	const q = `DELETE FROM transaction WHERE transaction_id = $1`

	return r.withConn(ctx, "delete_transaction", func(conn *pgx.Conn) error {
		res, err := conn.Exec(ctx, q, transactionID)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return domain.NewNotFoundError("transaction")
		}
		return nil
	})
}
