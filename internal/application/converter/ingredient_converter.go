package converter

import (
	"github.com/oksasatya/recipe-app/internal/application/command"
	"github.com/oksasatya/recipe-app/internal/domain/entity"
)

// IngredientToCommand converts an ingredient, delegating its unit to uom.
type IngredientToCommand struct {
	uom *UnitOfMeasureToCommand
}

func NewIngredientToCommand(uom *UnitOfMeasureToCommand) *IngredientToCommand {
	return &IngredientToCommand{uom: uom}
}

func (c *IngredientToCommand) Convert(src *entity.Ingredient) *command.IngredientCommand {
	if src == nil {
		return nil
	}
	return &command.IngredientCommand{
		ID:            src.ID,
		RecipeID:      src.RecipeID,
		Description:   src.Description,
		Amount:        src.Amount,
		UnitOfMeasure: c.uom.Convert(src.UnitOfMeasure),
	}
}

// CommandToIngredient builds a detached ingredient; the caller attaches it to a recipe.
type CommandToIngredient struct {
	uom *CommandToUnitOfMeasure
}

func NewCommandToIngredient(uom *CommandToUnitOfMeasure) *CommandToIngredient {
	return &CommandToIngredient{uom: uom}
}

func (c *CommandToIngredient) Convert(src *command.IngredientCommand) *entity.Ingredient {
	if src == nil {
		return nil
	}
	ing := &entity.Ingredient{
		ID:          src.ID,
		RecipeID:    src.RecipeID,
		Description: src.Description,
		Amount:      src.Amount,
	}
	ing.SetUnitOfMeasure(c.uom.Convert(src.UnitOfMeasure))
	return ing
}
