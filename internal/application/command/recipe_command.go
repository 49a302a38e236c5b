package command

import "github.com/oksasatya/recipe-app/internal/domain/entity"

// RecipeCommand backs the recipe form and the JSON API.
// Nested collections are filled by converters, never by form binding.
type RecipeCommand struct {
	ID          int64             `json:"id" form:"id"`
	Description string            `json:"description" form:"description" binding:"required,min=3,max=255"`
	PrepTime    int               `json:"prep_time" form:"prep_time" binding:"min=1,max=999"`
	CookTime    int               `json:"cook_time" form:"cook_time" binding:"min=1,max=999"`
	Servings    int               `json:"servings" form:"servings" binding:"min=1,max=100"`
	Source      string            `json:"source" form:"source" binding:"max=255"`
	URL         string            `json:"url" form:"url" binding:"omitempty,url"`
	Directions  string            `json:"directions" form:"directions" binding:"required"`
	Difficulty  entity.Difficulty `json:"difficulty" form:"difficulty" binding:"omitempty,oneof=EASY MODERATE KIND_OF_HARD HARD"`
	ImageURL    string            `json:"image_url,omitempty" form:"-"`
	HasImage    bool              `json:"has_image" form:"-"`

	Notes       *NotesCommand        `json:"notes,omitempty" form:"-"`
	Ingredients []*IngredientCommand `json:"ingredients" form:"-"`
	Categories  []*CategoryCommand   `json:"categories" form:"-"`
}

// HasCategory reports whether a category with the given id is attached; used by the form view.
func (c *RecipeCommand) HasCategory(id int64) bool {
	if c == nil {
		return false
	}
	for _, cat := range c.Categories {
		if cat != nil && cat.ID == id {
			return true
		}
	}
	return false
}
