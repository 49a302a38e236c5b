package entity

// Notes holds free-form notes of a single recipe.
type Notes struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	RecipeID    int64  `gorm:"uniqueIndex;not null"`
	RecipeNotes string `gorm:"type:text"`
}

func (Notes) TableName() string { return "recipe_notes" }
