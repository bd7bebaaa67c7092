package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"fintrack/src/core/domain"
	"fintrack/src/core/ports"
)

const budgetColumns = `budget_id, user_id, category_id, amount_limit, budget_month, budget_year`

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	var b domain.Budget
	if err := row.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.AmountLimit, &b.Month, &b.Year); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBudgets returns a user's budgets, optionally narrowed to one month.
// The filter is expressed in SQL so both cases stay a single statement.
func (r *PostgresRepository) ListBudgets(ctx context.Context, userID int64, period *domain.BudgetPeriod) ([]domain.Budget, error) {
	const q = `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1
		  AND ($2::int IS NULL OR budget_month = $2)
		  AND ($3::int IS NULL OR budget_year = $3)
		ORDER BY budget_year DESC, budget_month DESC, budget_id ASC
	`
	var month, year *int
	if period != nil {
		month, year = &period.Month, &period.Year
	}

	budgets := []domain.Budget{}
	err := r.withConn(ctx, "list_budgets", func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, userID, month, year)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			b, err := scanBudget(rows)
			if err != nil {
				return err
			}
			budgets = append(budgets, *b)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *PostgresRepository) CreateBudget(ctx context.Context, in ports.BudgetInput) (*domain.Budget, error) {
	const q = `
		INSERT INTO budgets (user_id, category_id, amount_limit, budget_month, budget_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + budgetColumns

	var budget *domain.Budget
	err := r.withConn(ctx, "create_budget", func(conn *pgx.Conn) error {
		var err error
		budget, err = scanBudget(conn.QueryRow(ctx, q, in.UserID, in.CategoryID, in.AmountLimit, in.Month, in.Year))
		return err
	})
	if err != nil {
		return nil, err
	}
	return budget, nil
}

func (r *PostgresRepository) UpdateBudget(ctx context.Context, budgetID int64, in ports.BudgetInput) (*domain.Budget, error) {
	const q = `
		UPDATE budgets
		SET category_id = $2, amount_limit = $3, budget_month = $4, budget_year = $5
		WHERE budget_id = $1
		RETURNING ` + budgetColumns

	var budget *domain.Budget
	err := r.withConn(ctx, "update_budget", func(conn *pgx.Conn) error {
		var err error
		budget, err = scanBudget(conn.QueryRow(ctx, q, budgetID, in.CategoryID, in.AmountLimit, in.Month, in.Year))
		return err
	})
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NewNotFoundError("budget")
		}
		return nil, err
	}
	return budget, nil
}

func (r *PostgresRepository) DeleteBudget(ctx context.Context, budgetID int64) error {
	const q = `DELETE FROM budgets WHERE budget_id = $1`

	return r.withConn(ctx, "delete_budget", func(conn *pgx.Conn) error {
		res, err := conn.Exec(ctx, q, budgetID)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return domain.NewNotFoundError("budget")
		}
		return nil
	})
}
