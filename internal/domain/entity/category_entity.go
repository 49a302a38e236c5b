package entity

// Category groups recipes, e.g. "Mexican"
// Many-to-many with Recipe via recipe_categories
type Category struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Description string `gorm:"uniqueIndex"`
}

func (Category) TableName() string { return "categories" }
