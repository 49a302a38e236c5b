package command

type NotesCommand struct {
	ID          int64  `json:"id"`
	RecipeNotes string `json:"recipe_notes"`
}
