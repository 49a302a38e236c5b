package event

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// RecipeEventType names what happened to a recipe aggregate.
type RecipeEventType string

const (
	RecipeSaved   RecipeEventType = "recipe.saved"
	RecipeDeleted RecipeEventType = "recipe.deleted"
)

// RecipeEvent is published after a recipe aggregate has been committed.
// Consumers reload the aggregate by id; the payload carries no recipe state.
type RecipeEvent struct {
	ID         string          `json:"id"`
	Type       RecipeEventType `json:"type"`
	RecipeID   int64           `json:"recipe_id"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func NewRecipeEvent(t RecipeEventType, recipeID int64) RecipeEvent {
	return RecipeEvent{
		ID:         uuid.NewString(),
		Type:       t,
		RecipeID:   recipeID,
		OccurredAt: time.Now().UTC(),
	}
}

// MessageKey keeps all events of one recipe on the same partition.
func (e RecipeEvent) MessageKey() string {
	return strconv.FormatInt(e.RecipeID, 10)
}
