package repository

import (
	"context"

	"github.com/oksasatya/recipe-app/internal/domain/entity"
)

type UnitOfMeasureRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.UnitOfMeasure, error)
	FindByDescription(ctx context.Context, description string) (*entity.UnitOfMeasure, error)
	FindAll(ctx context.Context) ([]*entity.UnitOfMeasure, error)
	Save(ctx context.Context, u *entity.UnitOfMeasure) error
}
