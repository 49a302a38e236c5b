package command

import "github.com/shopspring/decimal"

// IngredientCommand is the transfer shape of an ingredient.
// It references its recipe by id only.
type IngredientCommand struct {
	ID            int64                 `json:"id" form:"id"`
	RecipeID      int64                 `json:"recipe_id" form:"recipe_id"`
	Description   string                `json:"description" form:"description" binding:"required,max=255"`
	Amount        decimal.Decimal       `json:"amount" form:"amount" binding:"gt=0,lt=1000000"`
	UnitOfMeasure *UnitOfMeasureCommand `json:"uom,omitempty" form:"-" binding:"required"`
}

// UnitOfMeasureID returns the referenced unit id, zero when unset.
func (c *IngredientCommand) UnitOfMeasureID() int64 {
	if c == nil || c.UnitOfMeasure == nil {
		return 0
	}
	return c.UnitOfMeasure.ID
}
