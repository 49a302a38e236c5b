package repository

import (
	"context"

	"github.com/oksasatya/recipe-app/internal/domain/entity"
)

type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	FindByDescription(ctx context.Context, description string) (*entity.Category, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
	Save(ctx context.Context, c *entity.Category) error
}
