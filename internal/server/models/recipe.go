package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/plateshare/plateshare/internal/common"
)

// MinInstructionsLength is the minimum number of characters (after
// trimming) a recipe's instructions must have.
const MinInstructionsLength = 50

// Recipe is a user-owned piece of content. A recipe always belongs to
// exactly one user.
type Recipe struct {
	ID                string
	Title             string
	Instructions      string
	MinutesToComplete int
	UserID            string
	CreatedAt         time.Time
}

// RecipeView is the outward JSON shape of a recipe. The owner appears only
// as user_id; the nested user (and its recipe collection) is omitted to
// avoid cyclic serialization.
type RecipeView struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete int    `json:"minutes_to_complete"`
	UserID            string `json:"user_id"`
}

// NewRecipe validates the fields and returns a Recipe. Rules are checked in
// order (title, instructions, minutes_to_complete, owner) and the first
// failure determines the returned error.
func NewRecipe(title, instructions string, minutesToComplete int, userID string) (*Recipe, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.NewValidationError("Title must be present")
	}
	trimmed := strings.TrimSpace(instructions)
	if trimmed == "" {
		return nil, common.NewValidationError("Instructions must be present")
	}
	if utf8.RuneCountInString(trimmed) < MinInstructionsLength {
		return nil, common.NewValidationError("Instructions must be at least 50 characters long")
	}
	if minutesToComplete < 1 {
		return nil, common.NewValidationError("Minutes to complete must be a positive integer")
	}
	if userID == "" {
		return nil, common.NewValidationError("Recipe must be associated with a user")
	}
	return &Recipe{
		Title:             title,
		Instructions:      instructions,
		MinutesToComplete: minutesToComplete,
		UserID:            userID,
	}, nil
}

// PublicView returns the externally safe subset of the recipe's fields.
func (r *Recipe) PublicView() RecipeView {
	return RecipeView{
		ID:                r.ID,
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
		UserID:            r.UserID,
	}
}
