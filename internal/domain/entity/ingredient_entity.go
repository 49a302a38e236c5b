package entity

import "github.com/shopspring/decimal"

// AmountScale is the number of decimal places an ingredient amount is stored with.
const AmountScale = 4

// NormalizeAmount rounds d to the stored scale.
func NormalizeAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountScale)
}

// Ingredient belongs to exactly one Recipe.
// RecipeID is a plain back-reference; the recipe owns the ingredient, never the other way round.
type Ingredient struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	RecipeID        int64 `gorm:"index;not null"`
	Description     string
	Amount          decimal.Decimal `gorm:"type:numeric(19,4)"`
	UnitOfMeasureID *int64          `gorm:"column:unit_of_measure_id"`
	UnitOfMeasure   *UnitOfMeasure  `gorm:"foreignKey:UnitOfMeasureID"`
}

func (Ingredient) TableName() string { return "ingredients" }

// SetUnitOfMeasure points the ingredient at uom (or clears it when nil).
func (i *Ingredient) SetUnitOfMeasure(uom *UnitOfMeasure) {
	i.UnitOfMeasure = uom
	if uom == nil {
		i.UnitOfMeasureID = nil
		return
	}
	id := uom.ID
	i.UnitOfMeasureID = &id
}

// UnitOfMeasureIDValue returns the referenced unit id, zero when unset.
func (i *Ingredient) UnitOfMeasureIDValue() int64 {
	if i.UnitOfMeasure != nil {
		return i.UnitOfMeasure.ID
	}
	if i.UnitOfMeasureID != nil {
		return *i.UnitOfMeasureID
	}
	return 0
}
