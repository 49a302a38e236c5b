package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/oksasatya/recipe-app/internal/domain/entity"
	"github.com/oksasatya/recipe-app/internal/domain/repository"
)

type UnitOfMeasureRepository struct {
	db *gorm.DB
}

func NewUnitOfMeasureRepository(db *gorm.DB) *UnitOfMeasureRepository {
	return &UnitOfMeasureRepository{db: db}
}

func (r *UnitOfMeasureRepository) FindByID(ctx context.Context, id int64) (*entity.UnitOfMeasure, error) {
	var u entity.UnitOfMeasure
	if err := conn(ctx, r.db).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UnitOfMeasureRepository) FindByDescription(ctx context.Context, description string) (*entity.UnitOfMeasure, error) {
	var u entity.UnitOfMeasure
	if err := conn(ctx, r.db).Where("description = ?", description).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UnitOfMeasureRepository) FindAll(ctx context.Context) ([]*entity.UnitOfMeasure, error) {
	var out []*entity.UnitOfMeasure
	if err := conn(ctx, r.db).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UnitOfMeasureRepository) Save(ctx context.Context, u *entity.UnitOfMeasure) error {
	return conn(ctx, r.db).Save(u).Error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	if err := conn(ctx, r.db).First(&c, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *CategoryRepository) FindByDescription(ctx context.Context, description string) (*entity.Category, error) {
	var c entity.Category
	if err := conn(ctx, r.db).Where("description = ?", description).First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	if err := conn(ctx, r.db).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CategoryRepository) Save(ctx context.Context, c *entity.Category) error {
	return conn(ctx, r.db).Save(c).Error
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}

var (
	_ repository.UnitOfMeasureRepository = (*UnitOfMeasureRepository)(nil)
	_ repository.CategoryRepository      = (*CategoryRepository)(nil)
)
