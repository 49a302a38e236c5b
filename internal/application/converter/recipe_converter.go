package converter

import (
	"github.com/oksasatya/recipe-app/internal/application/command"
	"github.com/oksasatya/recipe-app/internal/domain/entity"
)

type RecipeToCommand struct {
	categories  *CategoryToCommand
	ingredients *IngredientToCommand
	notes       *NotesToCommand
}

func NewRecipeToCommand(categories *CategoryToCommand, ingredients *IngredientToCommand, notes *NotesToCommand) *RecipeToCommand {
	return &RecipeToCommand{categories: categories, ingredients: ingredients, notes: notes}
}

func (c *RecipeToCommand) Convert(src *entity.Recipe) *command.RecipeCommand {
	if src == nil {
		return nil
	}
	out := &command.RecipeCommand{
		ID:          src.ID,
		Description: src.Description,
		PrepTime:    src.PrepTime,
		CookTime:    src.CookTime,
		Servings:    src.Servings,
		Source:      src.Source,
		URL:         src.URL,
		Directions:  src.Directions,
		Difficulty:  src.Difficulty,
		ImageURL:    src.ImageURL,
		HasImage:    len(src.Image) > 0 || src.ImageURL != "",
		Notes:       c.notes.Convert(src.Notes),
		Ingredients: make([]*command.IngredientCommand, 0, len(src.Ingredients)),
		Categories:  make([]*command.CategoryCommand, 0, len(src.Categories)),
	}
	for _, ing := range src.Ingredients {
		if ic := c.ingredients.Convert(ing); ic != nil {
			ic.RecipeID = src.ID
			out.Ingredients = append(out.Ingredients, ic)
		}
	}
	for _, cat := range src.Categories {
		if cc := c.categories.Convert(cat); cc != nil {
			out.Categories = append(out.Categories, cc)
		}
	}
	return out
}

type CommandToRecipe struct {
	categories  *CommandToCategory
	ingredients *CommandToIngredient
	notes       *CommandToNotes
}

func NewCommandToRecipe(categories *CommandToCategory, ingredients *CommandToIngredient, notes *CommandToNotes) *CommandToRecipe {
	return &CommandToRecipe{categories: categories, ingredients: ingredients, notes: notes}
}

func (c *CommandToRecipe) Convert(src *command.RecipeCommand) *entity.Recipe {
	if src == nil {
		return nil
	}
	r := &entity.Recipe{
		ID:          src.ID,
		Description: src.Description,
		PrepTime:    src.PrepTime,
		CookTime:    src.CookTime,
		Servings:    src.Servings,
		Source:      src.Source,
		URL:         src.URL,
		Directions:  src.Directions,
		Difficulty:  src.Difficulty,
		ImageURL:    src.ImageURL,
	}
	r.SetNotes(c.notes.Convert(src.Notes))
	for _, ic := range src.Ingredients {
		r.AddIngredient(c.ingredients.Convert(ic))
	}
	for _, cc := range src.Categories {
		if cat := c.categories.Convert(cc); cat != nil {
			r.Categories = append(r.Categories, cat)
		}
	}
	return r
}
