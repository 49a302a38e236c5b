package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/recipe-app/internal/domain/entity"
)

// ErrNotFound is returned by every repository when the requested record does not exist.
var ErrNotFound = errors.New("not found")

// RecipeRepository defines persistence operations for the recipe aggregate.
// Save writes the whole aggregate (ingredients, notes, category links) and returns it as stored,
// with identifiers assigned.
type RecipeRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Recipe, error)
	FindAll(ctx context.Context) ([]*entity.Recipe, error)
	Save(ctx context.Context, r *entity.Recipe) (*entity.Recipe, error)
	DeleteByID(ctx context.Context, id int64) error
}
