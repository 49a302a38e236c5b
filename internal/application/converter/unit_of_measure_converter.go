package converter

import (
	"github.com/oksasatya/recipe-app/internal/application/command"
	"github.com/oksasatya/recipe-app/internal/domain/entity"
)

type UnitOfMeasureToCommand struct{}

func NewUnitOfMeasureToCommand() *UnitOfMeasureToCommand { return &UnitOfMeasureToCommand{} }

func (c *UnitOfMeasureToCommand) Convert(src *entity.UnitOfMeasure) *command.UnitOfMeasureCommand {
	if src == nil {
		return nil
	}
	return &command.UnitOfMeasureCommand{ID: src.ID, Description: src.Description}
}

type CommandToUnitOfMeasure struct{}

func NewCommandToUnitOfMeasure() *CommandToUnitOfMeasure { return &CommandToUnitOfMeasure{} }

func (c *CommandToUnitOfMeasure) Convert(src *command.UnitOfMeasureCommand) *entity.UnitOfMeasure {
	if src == nil {
		return nil
	}
	return &entity.UnitOfMeasure{ID: src.ID, Description: src.Description}
}
