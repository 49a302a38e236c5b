package entity

// Difficulty grades how hard a recipe is to prepare.
type Difficulty string

const (
	DifficultyEasy       Difficulty = "EASY"
	DifficultyModerate   Difficulty = "MODERATE"
	DifficultyKindOfHard Difficulty = "KIND_OF_HARD"
	DifficultyHard       Difficulty = "HARD"
)

// Difficulties lists every grade in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyModerate, DifficultyKindOfHard, DifficultyHard}
}

// Recipe is the aggregate root of the recipe domain.
// It exclusively owns its Ingredients and Notes; Categories are shared references.
// ID is zero until the recipe has been persisted.
type Recipe struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Description string
	PrepTime    int
	CookTime    int
	Servings    int
	Source      string
	URL         string
	Directions  string     `gorm:"type:text"`
	Difficulty  Difficulty `gorm:"type:varchar(32)"`
	Image       []byte
	ImageURL    string

	Notes       *Notes        `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Ingredients []*Ingredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Categories  []*Category   `gorm:"many2many:recipe_categories;joinForeignKey:RecipeID;joinReferences:CategoryID"`
}

func (Recipe) TableName() string { return "recipes" }

// AddIngredient attaches ing to the recipe and points its back-reference at it.
func (r *Recipe) AddIngredient(ing *Ingredient) {
	if ing == nil {
		return
	}
	ing.RecipeID = r.ID
	r.Ingredients = append(r.Ingredients, ing)
}

// FindIngredient returns the ingredient with the given id, or nil.
func (r *Recipe) FindIngredient(id int64) *Ingredient {
	for _, ing := range r.Ingredients {
		if ing != nil && ing.ID == id {
			return ing
		}
	}
	return nil
}

// RemoveIngredient drops the ingredient with the given id and reports whether one was removed.
func (r *Recipe) RemoveIngredient(id int64) bool {
	for i, ing := range r.Ingredients {
		if ing != nil && ing.ID == id {
			r.Ingredients = append(r.Ingredients[:i], r.Ingredients[i+1:]...)
			return true
		}
	}
	return false
}

// SetNotes replaces the recipe notes, keeping the back-reference consistent.
func (r *Recipe) SetNotes(n *Notes) {
	if n != nil {
		n.RecipeID = r.ID
	}
	r.Notes = n
}
