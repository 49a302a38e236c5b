package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recipe-app/internal/domain/entity"
)

// RecipeLister is the slice of RecipeService the index page needs.
type RecipeLister interface {
	GetRecipes(ctx context.Context) ([]*entity.Recipe, error)
}

type IndexController struct {
	Recipes RecipeLister
	Logger  *logrus.Logger
}

func NewIndexController(recipes RecipeLister, logger *logrus.Logger) *IndexController {
	return &IndexController{Recipes: recipes, Logger: logger}
}

// GetIndexPage puts every recipe on the model under AttrRecipes and names the index view.
func (h *IndexController) GetIndexPage(ctx context.Context, model Model) (string, error) {
	recipes, err := h.Recipes.GetRecipes(ctx)
	if err != nil {
		return "", err
	}
	if recipes == nil {
		recipes = []*entity.Recipe{}
	}
	model.AddAttribute(AttrRecipes, recipes)
	return ViewIndex, nil
}

func (h *IndexController) Index(c *gin.Context) {
	model := NewViewModel()
	view, err := h.GetIndexPage(c.Request.Context(), model)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	c.HTML(http.StatusOK, view, gin.H(model))
}
