package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recipe-app/internal/application/command"
	"github.com/oksasatya/recipe-app/internal/domain/entity"
	"github.com/oksasatya/recipe-app/pkg/validation"
)

const (
	viewRecipeShow = "recipe/show"
	viewRecipeForm = "recipe/recipeform"
)

type RecipeController struct {
	Recipes    RecipeService
	Categories CategoryLister
	Logger     *logrus.Logger
}

func NewRecipeController(recipes RecipeService, categories CategoryLister, logger *logrus.Logger) *RecipeController {
	return &RecipeController{Recipes: recipes, Categories: categories, Logger: logger}
}

func (h *RecipeController) Show(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	recipe, err := h.Recipes.FindByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	c.HTML(http.StatusOK, viewRecipeShow, gin.H{"recipe": recipe})
}

func (h *RecipeController) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, &command.RecipeCommand{}, nil)
}

func (h *RecipeController) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	cmd, err := h.Recipes.FindCommandByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	h.renderForm(c, http.StatusOK, cmd, nil)
}

// SaveOrUpdate binds the recipe form. Validation errors re-render the form with status 400.
func (h *RecipeController) SaveOrUpdate(c *gin.Context) {
	var cmd command.RecipeCommand
	if err := c.ShouldBind(&cmd); err != nil {
		h.renderForm(c, http.StatusBadRequest, &cmd, validation.ToDetails(err))
		return
	}
	if notes := strings.TrimSpace(c.PostForm("notes")); notes != "" {
		cmd.Notes = &command.NotesCommand{RecipeNotes: notes}
	}
	for _, raw := range c.PostFormArray("categories") {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.renderForm(c, http.StatusBadRequest, &cmd, map[string]string{"categories": "invalid category"})
			return
		}
		cmd.Categories = append(cmd.Categories, &command.CategoryCommand{ID: id})
	}

	saved, err := h.Recipes.SaveRecipeCommand(c.Request.Context(), &cmd)
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/recipe/%d/show", saved.ID))
}

func (h *RecipeController) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	if err := h.Recipes.DeleteByID(c.Request.Context(), id); err != nil {
		renderError(c, h.Logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *RecipeController) renderForm(c *gin.Context, status int, cmd *command.RecipeCommand, errs map[string]string) {
	var categories []*command.CategoryCommand
	if h.Categories != nil {
		list, err := h.Categories.ListAll(c.Request.Context())
		if err != nil {
			renderError(c, h.Logger, err)
			return
		}
		categories = list
	}
	c.HTML(status, viewRecipeForm, gin.H{
		"recipe":       cmd,
		"categories":   categories,
		"difficulties": entity.Difficulties(),
		"errors":       errs,
	})
}
