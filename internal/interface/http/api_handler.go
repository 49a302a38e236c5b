package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recipe-app/internal/application"
	"github.com/oksasatya/recipe-app/internal/application/command"
	"github.com/oksasatya/recipe-app/internal/application/converter"
	"github.com/oksasatya/recipe-app/pkg/response"
	"github.com/oksasatya/recipe-app/pkg/validation"
)

// APIHandler exposes recipes, ingredients and units of measure as JSON.
type APIHandler struct {
	Recipes     RecipeService
	Ingredients IngredientService
	Units       UnitOfMeasureLister
	Search      RecipeSearcher
	ToCommand   *converter.RecipeToCommand
	Logger      *logrus.Logger
}

func NewAPIHandler(recipes RecipeService, ingredients IngredientService, units UnitOfMeasureLister, search RecipeSearcher, toCommand *converter.RecipeToCommand, logger *logrus.Logger) *APIHandler {
	return &APIHandler{Recipes: recipes, Ingredients: ingredients, Units: units, Search: search, ToCommand: toCommand, Logger: logger}
}

func (h *APIHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.Recipes.GetRecipes(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]*command.RecipeCommand, 0, len(recipes))
	for _, r := range recipes {
		if cmd := h.ToCommand.Convert(r); cmd != nil {
			out = append(out, cmd)
		}
	}
	response.Success(c, http.StatusOK, out, "ok", map[string]any{"count": len(out)})
}

func (h *APIHandler) GetRecipe(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	cmd, err := h.Recipes.FindCommandByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, cmd, "ok", nil)
}

func (h *APIHandler) SearchRecipes(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", map[string]string{"q": "is required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Search.Search(c.Request.Context(), q, size)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "ok", map[string]any{"count": len(hits)})
}

func (h *APIHandler) ListUoms(c *gin.Context) {
	units, err := h.Units.ListAllUoms(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, units, "ok", nil)
}

func (h *APIHandler) GetIngredient(c *gin.Context) {
	recipeID, err := paramID(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	ingredientID, err := paramID(c, "ingredientId")
	if err != nil {
		h.fail(c, err)
		return
	}
	ing, err := h.Ingredients.FindByRecipeIDAndIngredientID(c.Request.Context(), recipeID, ingredientID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, ing, "ok", nil)
}

// SaveIngredient creates or updates an ingredient; the recipe id in the path wins over the body.
func (h *APIHandler) SaveIngredient(c *gin.Context) {
	recipeID, err := paramID(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	var cmd command.IngredientCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cmd.RecipeID = recipeID

	saved, err := h.Ingredients.SaveIngredientCommand(c.Request.Context(), &cmd)
	if err != nil {
		h.fail(c, err)
		return
	}
	status := http.StatusOK
	if cmd.ID == 0 || cmd.ID != saved.ID {
		status = http.StatusCreated
	}
	response.Success(c, status, saved, "ingredient saved", nil)
}

func (h *APIHandler) DeleteIngredient(c *gin.Context) {
	recipeID, err := paramID(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	ingredientID, err := paramID(c, "ingredientId")
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.Ingredients.RemoveIngredientOfRecipe(c.Request.Context(), recipeID, ingredientID); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "ingredient removed", nil)
}

func (h *APIHandler) fail(c *gin.Context, err error) {
	switch {
	case application.IsNotFound(err):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, ErrInvalidID), errors.Is(err, application.ErrInvalidCommand):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("path", c.Request.URL.Path).Error("api request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
