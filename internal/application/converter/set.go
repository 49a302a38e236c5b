package converter

// Set bundles every converter, wired with its sub-converters.
type Set struct {
	UnitOfMeasureToCommand *UnitOfMeasureToCommand
	CommandToUnitOfMeasure *CommandToUnitOfMeasure
	IngredientToCommand    *IngredientToCommand
	CommandToIngredient    *CommandToIngredient
	CategoryToCommand      *CategoryToCommand
	CommandToCategory      *CommandToCategory
	NotesToCommand         *NotesToCommand
	CommandToNotes         *CommandToNotes
	RecipeToCommand        *RecipeToCommand
	CommandToRecipe        *CommandToRecipe
}

func NewSet() *Set {
	s := &Set{
		UnitOfMeasureToCommand: NewUnitOfMeasureToCommand(),
		CommandToUnitOfMeasure: NewCommandToUnitOfMeasure(),
		CategoryToCommand:      NewCategoryToCommand(),
		CommandToCategory:      NewCommandToCategory(),
		NotesToCommand:         NewNotesToCommand(),
		CommandToNotes:         NewCommandToNotes(),
	}
	s.IngredientToCommand = NewIngredientToCommand(s.UnitOfMeasureToCommand)
	s.CommandToIngredient = NewCommandToIngredient(s.CommandToUnitOfMeasure)
	s.RecipeToCommand = NewRecipeToCommand(s.CategoryToCommand, s.IngredientToCommand, s.NotesToCommand)
	s.CommandToRecipe = NewCommandToRecipe(s.CommandToCategory, s.CommandToIngredient, s.CommandToNotes)
	return s
}
