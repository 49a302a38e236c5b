package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recipe-app/internal/application/command"
	"github.com/oksasatya/recipe-app/pkg/validation"
)

const (
	viewIngredientList = "recipe/ingredient/list"
	viewIngredientShow = "recipe/ingredient/show"
	viewIngredientForm = "recipe/ingredient/ingredientform"
)

type IngredientController struct {
	Recipes     RecipeService
	Ingredients IngredientService
	Units       UnitOfMeasureLister
	Logger      *logrus.Logger
}

func NewIngredientController(recipes RecipeService, ingredients IngredientService, units UnitOfMeasureLister, logger *logrus.Logger) *IngredientController {
	return &IngredientController{Recipes: recipes, Ingredients: ingredients, Units: units, Logger: logger}
}

func (h *IngredientController) List(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	recipe, err := h.Recipes.FindCommandByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	c.HTML(http.StatusOK, viewIngredientList, gin.H{"recipe": recipe})
}

func (h *IngredientController) Show(c *gin.Context) {
	ing, ok := h.lookup(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, viewIngredientShow, gin.H{"ingredient": ing})
}

// New prepares an empty ingredient bound to an existing recipe.
func (h *IngredientController) New(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	if _, err := h.Recipes.FindByID(c.Request.Context(), id); err != nil {
		renderError(c, h.Logger, err)
		return
	}
	h.renderForm(c, http.StatusOK, &command.IngredientCommand{RecipeID: id, UnitOfMeasure: &command.UnitOfMeasureCommand{}}, nil)
}

func (h *IngredientController) Update(c *gin.Context) {
	ing, ok := h.lookup(c)
	if !ok {
		return
	}
	h.renderForm(c, http.StatusOK, ing, nil)
}

func (h *IngredientController) SaveOrUpdate(c *gin.Context) {
	recipeID, err := paramID(c, "id")
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}

	var cmd command.IngredientCommand
	if uomID, err := strconv.ParseInt(c.PostForm("uom_id"), 10, 64); err == nil && uomID > 0 {
		cmd.UnitOfMeasure = &command.UnitOfMeasureCommand{ID: uomID}
	}
	if err := c.ShouldBind(&cmd); err != nil {
		cmd.RecipeID = recipeID
		h.renderForm(c, http.StatusBadRequest, &cmd, validation.ToDetails(err))
		return
	}
	cmd.RecipeID = recipeID

	saved, err := h.Ingredients.SaveIngredientCommand(c.Request.Context(), &cmd)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/recipe/%d/ingredient/%d/show", saved.RecipeID, saved.ID))
}

func (h *IngredientController) Delete(c *gin.Context) {
	recipeID, err := paramID(c, "id")
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	ingredientID, err := paramID(c, "ingredientId")
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	if err := h.Ingredients.RemoveIngredientOfRecipe(c.Request.Context(), recipeID, ingredientID); err != nil {
		renderError(c, h.Logger, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/recipe/%d/ingredients", recipeID))
}

func (h *IngredientController) lookup(c *gin.Context) (*command.IngredientCommand, bool) {
	recipeID, err := paramID(c, "id")
	if err != nil {
		renderError(c, h.Logger, err)
		return nil, false
	}
	ingredientID, err := paramID(c, "ingredientId")
	if err != nil {
		renderError(c, h.Logger, err)
		return nil, false
	}
	ing, err := h.Ingredients.FindByRecipeIDAndIngredientID(c.Request.Context(), recipeID, ingredientID)
	if err != nil {
		renderError(c, h.Logger, err)
		return nil, false
	}
	return ing, true
}

func (h *IngredientController) renderForm(c *gin.Context, status int, cmd *command.IngredientCommand, errs map[string]string) {
	units, err := h.Units.ListAllUoms(c.Request.Context())
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	if cmd.UnitOfMeasure == nil {
		cmd.UnitOfMeasure = &command.UnitOfMeasureCommand{}
	}
	c.HTML(status, viewIngredientForm, gin.H{
		"ingredient": cmd,
		"uomList":    units,
		"errors":     errs,
	})
}
