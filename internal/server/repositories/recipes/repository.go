package recipes

import (
	"context"

	"github.com/plateshare/plateshare/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Recipe, error)
	DeleteByUser(ctx context.Context, userID string) error
}
