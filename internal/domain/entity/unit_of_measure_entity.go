package entity

// UnitOfMeasure is a reference entity shared by many ingredients.
type UnitOfMeasure struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Description string `gorm:"uniqueIndex"`
}

func (UnitOfMeasure) TableName() string { return "units_of_measure" }
