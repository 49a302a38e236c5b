package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/recipe-app/internal/interface/http"
)

// APIModule exposes recipes, ingredients, units and search as JSON under the API group.
type APIModule struct {
	Handler *handlers.APIHandler
}

func NewAPIModule(h *handlers.APIHandler) *APIModule { return &APIModule{Handler: h} }

func (m *APIModule) Register(rg *gin.RouterGroup) {
	rg.GET("/recipes", m.Handler.ListRecipes)
	rg.GET("/recipes/search", m.Handler.SearchRecipes)
	rg.GET("/recipes/:id", m.Handler.GetRecipe)
	rg.GET("/recipes/:id/ingredients/:ingredientId", m.Handler.GetIngredient)
	rg.POST("/recipes/:id/ingredients", m.Handler.SaveIngredient)
	rg.DELETE("/recipes/:id/ingredients/:ingredientId", m.Handler.DeleteIngredient)
	rg.GET("/uoms", m.Handler.ListUoms)
}
