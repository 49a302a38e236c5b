package command

type CategoryCommand struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}
