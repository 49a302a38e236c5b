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

type RecipeService struct {
	Repo       repo.RecipeRepository
	Categories repo.CategoryRepository
	Tx         repo.Transactor
	Converters *converter.Set
	Events     JSONPublisher
	Logger     *logrus.Logger
}

func NewRecipeService(recipes repo.RecipeRepository, categories repo.CategoryRepository, tx repo.Transactor, conv *converter.Set, events JSONPublisher, logger *logrus.Logger) *RecipeService {
	return &RecipeService{
		Repo:       recipes,
		Categories: categories,
		Tx:         tx,
		Converters: conv,
		Events:     events,
		Logger:     logger,
	}
}

// GetRecipes returns every stored recipe, exactly as the repository yields them.
func (s *RecipeService) GetRecipes(ctx context.Context) ([]*entity.Recipe, error) {
	return s.Repo.FindAll(ctx)
}

func (s *RecipeService) FindByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	return loadRecipe(ctx, s.Repo, id)
}

func (s *RecipeService) FindCommandByID(ctx context.Context, id int64) (*command.RecipeCommand, error) {
	r, err := loadRecipe(ctx, s.Repo, id)
	if err != nil {
		return nil, err
	}
	return s.Converters.RecipeToCommand.Convert(r), nil
}

// SaveRecipeCommand creates a recipe from cmd when cmd.ID is zero. For an existing recipe it
// overwrites the descriptive fields, notes and categories; ingredients and image are left as stored.
func (s *RecipeService) SaveRecipeCommand(ctx context.Context, cmd *command.RecipeCommand) (*command.RecipeCommand, error) {
	if cmd == nil {
		return nil, ErrInvalidCommand
	}

	var saved *entity.Recipe
	err := withinTx(ctx, s.Tx, func(ctx context.Context) error {
		categories, err := s.resolveCategories(ctx, cmd.Categories)
		if err != nil {
			return err
		}

		incoming := s.Converters.CommandToRecipe.Convert(cmd)
		target := incoming
		if cmd.ID != 0 {
			target, err = loadRecipe(ctx, s.Repo, cmd.ID)
			if err != nil {
				return err
			}
			applyRecipeFields(target, incoming)
		}
		target.Categories = categories

		saved, err = s.Repo.Save(ctx, target)
		if err != nil {
			return fmt.Errorf("save recipe: %w", err)
		}
		return nil
	})
	if err != nil {
		if s.Logger != nil && !IsNotFound(err) {
			s.Logger.WithError(err).WithField("recipe_id", cmd.ID).Error("save recipe failed")
		}
		return nil, err
	}

	publishRecipeEvent(ctx, s.Events, s.Logger, event.RecipeSaved, saved.ID)
	return s.Converters.RecipeToCommand.Convert(saved), nil
}

func (s *RecipeService) DeleteByID(ctx context.Context, id int64) error {
	err := withinTx(ctx, s.Tx, func(ctx context.Context) error {
		return s.Repo.DeleteByID(ctx, id)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("%w: id %d", ErrRecipeNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("delete recipe %d: %w", id, err)
	}
	if s.Logger != nil {
		s.Logger.WithField("recipe_id", id).Info("recipe deleted")
	}
	publishRecipeEvent(ctx, s.Events, s.Logger, event.RecipeDeleted, id)
	return nil
}

func (s *RecipeService) resolveCategories(ctx context.Context, in []*command.CategoryCommand) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(in))
	for _, cc := range in {
		if cc == nil || cc.ID == 0 {
			continue
		}
		if s.Categories == nil {
			out = append(out, s.Converters.CommandToCategory.Convert(cc))
			continue
		}
		cat, err := s.Categories.FindByID(ctx, cc.ID)
		if errors.Is(err, repo.ErrNotFound) || (err == nil && cat == nil) {
			return nil, fmt.Errorf("%w: id %d", ErrCategoryNotFound, cc.ID)
		}
		if err != nil {
			return nil, fmt.Errorf("load category %d: %w", cc.ID, err)
		}
		out = append(out, cat)
	}
	return out, nil
}

func applyRecipeFields(dst, src *entity.Recipe) {
	dst.Description = src.Description
	dst.PrepTime = src.PrepTime
	dst.CookTime = src.CookTime
	dst.Servings = src.Servings
	dst.Source = src.Source
	dst.URL = src.URL
	dst.Directions = src.Directions
	dst.Difficulty = src.Difficulty

	switch {
	case src.Notes == nil:
	case dst.Notes == nil:
		dst.SetNotes(&entity.Notes{RecipeNotes: src.Notes.RecipeNotes})
	default:
		dst.Notes.RecipeNotes = src.Notes.RecipeNotes
	}
}
