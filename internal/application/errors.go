package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/oksasatya/recipe-app/internal/domain/entity"
	repo "github.com/oksasatya/recipe-app/internal/domain/repository"
)

var (
	ErrRecipeNotFound        = errors.New("recipe not found")
	ErrIngredientNotFound    = errors.New("ingredient not found")
	ErrUnitOfMeasureNotFound = errors.New("unit of measure not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrInvalidCommand        = errors.New("invalid command")
)

// IsNotFound reports whether err is one of the not-found errors of this package.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecipeNotFound) ||
		errors.Is(err, ErrIngredientNotFound) ||
		errors.Is(err, ErrUnitOfMeasureNotFound) ||
		errors.Is(err, ErrCategoryNotFound)
}

func loadRecipe(ctx context.Context, recipes repo.RecipeRepository, id int64) (*entity.Recipe, error) {
	r, err := recipes.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) || (err == nil && r == nil) {
		return nil, fmt.Errorf("%w: id %d", ErrRecipeNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load recipe %d: %w", id, err)
	}
	return r, nil
}

func withinTx(ctx context.Context, tx repo.Transactor, fn func(ctx context.Context) error) error {
	if tx == nil {
		return fn(ctx)
	}
	return tx.WithinTx(ctx, fn)
}
