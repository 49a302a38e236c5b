package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/recipe-app/internal/interface/http"
)

type IngredientModule struct {
	Handler *handlers.IngredientController
}

func NewIngredientModule(h *handlers.IngredientController) *IngredientModule {
	return &IngredientModule{Handler: h}
}

func (m *IngredientModule) Register(rg *gin.RouterGroup) {
	rg.GET("/recipe/:id/ingredients", m.Handler.List)
	rg.GET("/recipe/:id/ingredient/new", m.Handler.New)
	rg.POST("/recipe/:id/ingredient", m.Handler.SaveOrUpdate)
	rg.GET("/recipe/:id/ingredient/:ingredientId/show", m.Handler.Show)
	rg.GET("/recipe/:id/ingredient/:ingredientId/update", m.Handler.Update)
	rg.GET("/recipe/:id/ingredient/:ingredientId/delete", m.Handler.Delete)
}
