package command

type UnitOfMeasureCommand struct {
	ID          int64  `json:"id" form:"id"`
	Description string `json:"description" form:"description"`
}
