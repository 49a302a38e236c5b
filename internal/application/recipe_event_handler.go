package application

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recipe-app/internal/domain/event"
	"github.com/oksasatya/recipe-app/pkg/helpers"
)

// RecipeIndexer is the part of SearchService driven by recipe events.
type RecipeIndexer interface {
	IndexRecipe(ctx context.Context, recipeID int64) error
	RemoveRecipe(ctx context.Context, recipeID int64) error
}

// NewRecipeEventHandler decodes recipe events and keeps the search index in step.
// Undecodable or unknown events are dropped; index failures are returned for redelivery.
func NewRecipeEventHandler(idx RecipeIndexer, logger *logrus.Logger) helpers.MessageHandler {
	return func(ctx context.Context, body []byte) error {
		var ev event.RecipeEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return fmt.Errorf("%w: decode recipe event: %v", helpers.ErrDropMessage, err)
		}
		if ev.RecipeID <= 0 {
			return fmt.Errorf("%w: recipe event %s without recipe id", helpers.ErrDropMessage, ev.ID)
		}

		var err error
		switch ev.Type {
		case event.RecipeSaved:
			err = idx.IndexRecipe(ctx, ev.RecipeID)
		case event.RecipeDeleted:
			err = idx.RemoveRecipe(ctx, ev.RecipeID)
		default:
			return fmt.Errorf("%w: unknown recipe event type %q", helpers.ErrDropMessage, ev.Type)
		}
		if err == nil && logger != nil {
			logger.WithFields(logrus.Fields{"event_id": ev.ID, "type": ev.Type, "recipe_id": ev.RecipeID}).Debug("recipe event handled")
		}
		return err
	}
}

// ReindexAll indexes every stored recipe and returns how many were indexed.
func (s *SearchService) ReindexAll(ctx context.Context) (int, error) {
	if !s.enabled() {
		return 0, nil
	}
	recipes, err := s.Recipes.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range recipes {
		if err := s.IndexRecipe(ctx, r.ID); err != nil {
			return n, fmt.Errorf("reindex recipe %d: %w", r.ID, err)
		}
		n++
	}
	return n, nil
}
