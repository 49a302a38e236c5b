package converter

import (
	"github.com/oksasatya/recipe-app/internal/application/command"
	"github.com/oksasatya/recipe-app/internal/domain/entity"
)

type NotesToCommand struct{}

func NewNotesToCommand() *NotesToCommand { return &NotesToCommand{} }

func (c *NotesToCommand) Convert(src *entity.Notes) *command.NotesCommand {
	if src == nil {
		return nil
	}
	return &command.NotesCommand{ID: src.ID, RecipeNotes: src.RecipeNotes}
}

type CommandToNotes struct{}

func NewCommandToNotes() *CommandToNotes { return &CommandToNotes{} }

func (c *CommandToNotes) Convert(src *command.NotesCommand) *entity.Notes {
	if src == nil {
		return nil
	}
	return &entity.Notes{ID: src.ID, RecipeNotes: src.RecipeNotes}
}
