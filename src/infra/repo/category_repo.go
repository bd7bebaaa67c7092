package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"fintrack/src/core/domain"
)

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const q = `
		SELECT category_id, category_name, category_type
		FROM category
		ORDER BY category_id ASC
	`
	categories := []domain.Category{}
	err := r.withConn(ctx, "list_categories", func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var c domain.Category
			if err := rows.Scan(&c.ID, &c.Name, &c.Type); err != nil {
				return err
			}
			categories = append(categories, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}
