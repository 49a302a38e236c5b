package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oksasatya/recipe-app/internal/domain/entity"
	"github.com/oksasatya/recipe-app/internal/domain/repository"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// withAggregate preloads everything the recipe owns or references, in a stable order.
func withAggregate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("ingredients.id") }).
		Preload("Ingredients.UnitOfMeasure").
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("categories.id") }).
		Preload("Notes")
}

func (r *RecipeRepository) FindByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	var rec entity.Recipe
	err := withAggregate(conn(ctx, r.db)).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecipeRepository) FindAll(ctx context.Context) ([]*entity.Recipe, error) {
	var out []*entity.Recipe
	if err := withAggregate(conn(ctx, r.db)).Order("recipes.id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Save writes the recipe row, its ingredients, notes and category links, removing ingredients
// that are no longer part of the aggregate. It returns the aggregate reloaded from the database.
func (r *RecipeRepository) Save(ctx context.Context, rec *entity.Recipe) (*entity.Recipe, error) {
	var out entity.Recipe
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(rec).Error; err != nil {
			return err
		}
		if err := saveIngredients(tx, rec); err != nil {
			return err
		}
		if err := saveNotes(tx, rec); err != nil {
			return err
		}
		if err := saveCategoryLinks(tx, rec); err != nil {
			return err
		}
		return withAggregate(tx).First(&out, rec.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func saveIngredients(tx *gorm.DB, rec *entity.Recipe) error {
	keep := make([]int64, 0, len(rec.Ingredients))
	for _, ing := range rec.Ingredients {
		if ing != nil && ing.ID != 0 {
			keep = append(keep, ing.ID)
		}
	}
	orphans := tx.Where("recipe_id = ?", rec.ID)
	if len(keep) > 0 {
		orphans = orphans.Where("id NOT IN ?", keep)
	}
	if err := orphans.Delete(&entity.Ingredient{}).Error; err != nil {
		return err
	}

	for _, ing := range rec.Ingredients {
		if ing == nil {
			continue
		}
		ing.RecipeID = rec.ID
		ing.Amount = entity.NormalizeAmount(ing.Amount)
		if ing.UnitOfMeasure != nil {
			ing.SetUnitOfMeasure(ing.UnitOfMeasure)
		}
		if err := tx.Omit(clause.Associations).Save(ing).Error; err != nil {
			return err
		}
	}
	return nil
}

func saveNotes(tx *gorm.DB, rec *entity.Recipe) error {
	if rec.Notes == nil {
		return tx.Where("recipe_id = ?", rec.ID).Delete(&entity.Notes{}).Error
	}
	rec.Notes.RecipeID = rec.ID
	if rec.Notes.ID == 0 {
		var existing entity.Notes
		err := tx.Where("recipe_id = ?", rec.ID).Limit(1).Find(&existing).Error
		if err != nil {
			return err
		}
		rec.Notes.ID = existing.ID
	}
	return tx.Save(rec.Notes).Error
}

func saveCategoryLinks(tx *gorm.DB, rec *entity.Recipe) error {
	assoc := tx.Model(rec).Association("Categories")
	if len(rec.Categories) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(rec.Categories)
}

func (r *RecipeRepository) DeleteByID(ctx context.Context, id int64) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var rec entity.Recipe
		err := tx.Select("id").First(&rec, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entity.Ingredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entity.Notes{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&rec).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&rec).Error
	})
}

var _ repository.RecipeRepository = (*RecipeRepository)(nil)
