package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recipe-app/internal/application/command"
	"github.com/oksasatya/recipe-app/internal/application/converter"
	"github.com/oksasatya/recipe-app/internal/domain/entity"
	"github.com/oksasatya/recipe-app/internal/domain/event"
	repo "github.com/oksasatya/recipe-app/internal/domain/repository"
)

// IngredientService manages the ingredient collection of a recipe aggregate.
// Every mutation loads the recipe, changes it in memory and saves the whole aggregate.
type IngredientService struct {
	Recipes    repo.RecipeRepository
	Units      repo.UnitOfMeasureRepository
	Tx         repo.Transactor
	Converters *converter.Set
	Events     JSONPublisher
	Logger     *logrus.Logger
}

func NewIngredientService(recipes repo.RecipeRepository, units repo.UnitOfMeasureRepository, tx repo.Transactor, conv *converter.Set, events JSONPublisher, logger *logrus.Logger) *IngredientService {
	return &IngredientService{
		Recipes:    recipes,
		Units:      units,
		Tx:         tx,
		Converters: conv,
		Events:     events,
		Logger:     logger,
	}
}

// FindByRecipeIDAndIngredientID returns the ingredient as a command carrying recipeID.
func (s *IngredientService) FindByRecipeIDAndIngredientID(ctx context.Context, recipeID, ingredientID int64) (*command.IngredientCommand, error) {
	r, err := loadRecipe(ctx, s.Recipes, recipeID)
	if err != nil {
		return nil, err
	}
	ing := r.FindIngredient(ingredientID)
	if ing == nil {
		return nil, fmt.Errorf("%w: recipe %d ingredient %d", ErrIngredientNotFound, recipeID, ingredientID)
	}
	cmd := s.Converters.IngredientToCommand.Convert(ing)
	cmd.RecipeID = recipeID
	return cmd, nil
}

// ListIngredients returns every ingredient of the recipe as commands.
func (s *IngredientService) ListIngredients(ctx context.Context, recipeID int64) ([]*command.IngredientCommand, error) {
	r, err := loadRecipe(ctx, s.Recipes, recipeID)
	if err != nil {
		return nil, err
	}
	out := make([]*command.IngredientCommand, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		if cmd := s.Converters.IngredientToCommand.Convert(ing); cmd != nil {
			cmd.RecipeID = recipeID
			out = append(out, cmd)
		}
	}
	return out, nil
}

// SaveIngredientCommand updates the ingredient with cmd.ID in place, or adds a new one when the
// recipe has no such ingredient, then persists the recipe. The returned command carries the
// identifier assigned by persistence.
func (s *IngredientService) SaveIngredientCommand(ctx context.Context, cmd *command.IngredientCommand) (*command.IngredientCommand, error) {
	if cmd == nil {
		return nil, ErrInvalidCommand
	}

	var out *command.IngredientCommand
	var recipeID int64
	err := withinTx(ctx, s.Tx, func(ctx context.Context) error {
		r, err := loadRecipe(ctx, s.Recipes, cmd.RecipeID)
		if err != nil {
			return err
		}
		uom, err := s.resolveUnit(ctx, cmd.UnitOfMeasureID())
		if err != nil {
			return err
		}

		target := s.existingIngredient(r, cmd.ID)
		if target != nil {
			target.Description = cmd.Description
			target.Amount = entity.NormalizeAmount(cmd.Amount)
			target.SetUnitOfMeasure(uom)
		} else {
			target = s.Converters.CommandToIngredient.Convert(cmd)
			target.ID = 0
			target.Amount = entity.NormalizeAmount(target.Amount)
			target.SetUnitOfMeasure(uom)
			r.AddIngredient(target)
		}

		saved, err := s.Recipes.Save(ctx, r)
		if err != nil {
			return fmt.Errorf("save recipe %d: %w", cmd.RecipeID, err)
		}

		found := locateSavedIngredient(saved, target)
		if found == nil {
			return fmt.Errorf("%w: saved ingredient missing from recipe %d", ErrIngredientNotFound, saved.ID)
		}
		recipeID = saved.ID
		if recipeID == 0 {
			recipeID = cmd.RecipeID
		}
		out = s.Converters.IngredientToCommand.Convert(found)
		out.RecipeID = recipeID
		return nil
	})
	if err != nil {
		if s.Logger != nil && !IsNotFound(err) {
			s.Logger.WithError(err).WithField("recipe_id", cmd.RecipeID).Error("save ingredient failed")
		}
		return nil, err
	}

	publishRecipeEvent(ctx, s.Events, s.Logger, event.RecipeSaved, recipeID)
	return out, nil
}

// RemoveIngredientOfRecipe deletes the ingredient from the recipe and persists the recipe.
// A missing recipe is an error; a missing ingredient is a no-op so repeated deletes are safe.
func (s *IngredientService) RemoveIngredientOfRecipe(ctx context.Context, recipeID, ingredientID int64) error {
	removed := false
	err := withinTx(ctx, s.Tx, func(ctx context.Context) error {
		r, err := loadRecipe(ctx, s.Recipes, recipeID)
		if err != nil {
			return err
		}
		if !r.RemoveIngredient(ingredientID) {
			return nil
		}
		removed = true
		if _, err := s.Recipes.Save(ctx, r); err != nil {
			return fmt.Errorf("save recipe %d: %w", recipeID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if !removed {
		if s.Logger != nil {
			s.Logger.WithFields(logrus.Fields{"recipe_id": recipeID, "ingredient_id": ingredientID}).Debug("ingredient already absent")
		}
		return nil
	}
	publishRecipeEvent(ctx, s.Events, s.Logger, event.RecipeSaved, recipeID)
	return nil
}

func (s *IngredientService) existingIngredient(r *entity.Recipe, id int64) *entity.Ingredient {
	if id == 0 {
		return nil
	}
	return r.FindIngredient(id)
}

func (s *IngredientService) resolveUnit(ctx context.Context, id int64) (*entity.UnitOfMeasure, error) {
	if id == 0 {
		return nil, nil
	}
	if s.Units == nil {
		return &entity.UnitOfMeasure{ID: id}, nil
	}
	u, err := s.Units.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) || (err == nil && u == nil) {
		return nil, fmt.Errorf("%w: id %d", ErrUnitOfMeasureNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load unit of measure %d: %w", id, err)
	}
	return u, nil
}

// locateSavedIngredient finds target in the aggregate returned by Save.
// Object identity does not survive persistence, so the lookup goes by the id the store wrote back
// and otherwise by the non-id fields, preferring the highest id since ids are assigned in insertion order.
func locateSavedIngredient(saved *entity.Recipe, target *entity.Ingredient) *entity.Ingredient {
	if saved == nil || target == nil {
		return nil
	}
	if target.ID != 0 {
		if ing := saved.FindIngredient(target.ID); ing != nil {
			return ing
		}
	}
	uomID := target.UnitOfMeasureIDValue()
	var best *entity.Ingredient
	for _, ing := range saved.Ingredients {
		if ing == nil || ing.Description != target.Description || !ing.Amount.Equal(target.Amount) || ing.UnitOfMeasureIDValue() != uomID {
			continue
		}
		if best == nil || ing.ID > best.ID {
			best = ing
		}
	}
	return best
}
