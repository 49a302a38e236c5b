package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/recipe-app/internal/interface/http"
)

// RecipeModule serves the recipe pages and the recipe image upload/render routes.
type RecipeModule struct {
	Recipes *handlers.RecipeController
	Images  *handlers.ImageController
}

func NewRecipeModule(recipes *handlers.RecipeController, images *handlers.ImageController) *RecipeModule {
	return &RecipeModule{Recipes: recipes, Images: images}
}

func (m *RecipeModule) Register(rg *gin.RouterGroup) {
	rg.GET("/recipe/new", m.Recipes.New)
	rg.POST("/recipe", m.Recipes.SaveOrUpdate)
	rg.GET("/recipe/:id/show", m.Recipes.Show)
	rg.GET("/recipe/:id/update", m.Recipes.Update)
	rg.GET("/recipe/:id/delete", m.Recipes.Delete)

	rg.GET("/recipe/:id/image", m.Images.UploadForm)
	rg.POST("/recipe/:id/image", m.Images.Upload)
	rg.GET("/recipe/:id/recipeimage", m.Images.RenderImage)
}
