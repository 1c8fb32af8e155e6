// Package recipes provides the PostgreSQL-backed repository for recipes.
package recipes

import (
	"context"
	"fmt"

	"github.com/plateshare/plateshare/internal/dbx"
	"github.com/plateshare/plateshare/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {

	query :=
		`INSERT INTO recipes (title, instructions, minutes_to_complete, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		recipe.Title, recipe.Instructions, recipe.MinutesToComplete, recipe.UserID).
		Scan(&recipe.ID, &recipe.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return recipe, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Recipe, error) {
	query :=
		`SELECT id, title, instructions, minutes_to_complete, user_id, created_at FROM recipes
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Recipe, 0)
	for rows.Next() {
		recipe := &models.Recipe{}
		err := rows.Scan(&recipe.ID, &recipe.Title, &recipe.Instructions,
			&recipe.MinutesToComplete, &recipe.UserID, &recipe.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID string) error {
	query := `DELETE FROM recipes WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
