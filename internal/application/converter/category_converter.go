package converter

import (
	"github.com/oksasatya/recipe-app/internal/application/command"
	"github.com/oksasatya/recipe-app/internal/domain/entity"
)

type CategoryToCommand struct{}

func NewCategoryToCommand() *CategoryToCommand { return &CategoryToCommand{} }

func (c *CategoryToCommand) Convert(src *entity.Category) *command.CategoryCommand {
	if src == nil {
		return nil
	}
	return &command.CategoryCommand{ID: src.ID, Description: src.Description}
}

type CommandToCategory struct{}

func NewCommandToCategory() *CommandToCategory { return &CommandToCategory{} }

func (c *CommandToCategory) Convert(src *command.CategoryCommand) *entity.Category {
	if src == nil {
		return nil
	}
	return &entity.Category{ID: src.ID, Description: src.Description}
}
