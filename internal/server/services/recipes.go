package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/plateshare/plateshare/internal/common"
	"github.com/plateshare/plateshare/internal/server/models"
	"github.com/plateshare/plateshare/internal/server/repositories/repomanager"
)

// RecipeInput carries the client-supplied recipe fields. The owner is never
// taken from the input; it always comes from the authenticated session.
type RecipeInput struct {
	Title             string
	Instructions      string
	MinutesToComplete int
}

type RecipeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewRecipeService(db *sql.DB, m repomanager.RepositoryManager) *RecipeService {
	return &RecipeService{db: db, repomanager: m}
}

// Create validates the input and persists a recipe owned by userID.
func (s *RecipeService) Create(ctx context.Context, userID string, input RecipeInput) (*models.Recipe, error) {

	recipe, err := models.NewRecipe(input.Title, input.Instructions, input.MinutesToComplete, userID)
	if err != nil {
		return nil, err
	}

	created, err := s.repomanager.Recipes(s.db).Create(ctx, recipe)
	if err != nil {
		var ve *common.ValidationError
		if errors.As(err, &ve) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating recipe: %w", err)
	}

	return created, nil
}

// ListByUser returns the user's recipes ordered by creation time.
func (s *RecipeService) ListByUser(ctx context.Context, userID string) ([]*models.Recipe, error) {

	list, err := s.repomanager.Recipes(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return list, nil
}
