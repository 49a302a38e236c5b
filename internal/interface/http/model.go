package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recipe-app/internal/application"
	"github.com/oksasatya/recipe-app/internal/application/command"
	"github.com/oksasatya/recipe-app/internal/domain/entity"
	"github.com/oksasatya/recipe-app/pkg/response"
)

// Model is the view-model a controller fills before a template is rendered.
type Model interface {
	AddAttribute(key string, value any)
}

// ViewModel is the gin.H backed Model passed to c.HTML.
type ViewModel gin.H

func NewViewModel() ViewModel { return ViewModel{} }

func (m ViewModel) AddAttribute(key string, value any) { m[key] = value }

const (
	AttrRecipes = "ATTR_RECIPES"

	ViewIndex = "index"
)

var ErrInvalidID = errors.New("invalid id")

// Service contracts the controllers depend on; implemented by the application services.
type (
	RecipeService interface {
		GetRecipes(ctx context.Context) ([]*entity.Recipe, error)
		FindByID(ctx context.Context, id int64) (*entity.Recipe, error)
		FindCommandByID(ctx context.Context, id int64) (*command.RecipeCommand, error)
		SaveRecipeCommand(ctx context.Context, cmd *command.RecipeCommand) (*command.RecipeCommand, error)
		DeleteByID(ctx context.Context, id int64) error
	}

	IngredientService interface {
		FindByRecipeIDAndIngredientID(ctx context.Context, recipeID, ingredientID int64) (*command.IngredientCommand, error)
		ListIngredients(ctx context.Context, recipeID int64) ([]*command.IngredientCommand, error)
		SaveIngredientCommand(ctx context.Context, cmd *command.IngredientCommand) (*command.IngredientCommand, error)
		RemoveIngredientOfRecipe(ctx context.Context, recipeID, ingredientID int64) error
	}

	UnitOfMeasureLister interface {
		ListAllUoms(ctx context.Context) ([]*command.UnitOfMeasureCommand, error)
	}

	CategoryLister interface {
		ListAll(ctx context.Context) ([]*command.CategoryCommand, error)
	}

	ImageSaver interface {
		SaveImageFile(ctx context.Context, recipeID int64, filename, contentType string, r io.Reader) error
	}

	RecipeSearcher interface {
		Search(ctx context.Context, q string, size int) ([]application.RecipeHit, error)
	}
)

func paramID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// renderError maps service errors onto the error views: not-found → 404error, bad input → 400error.
func renderError(c *gin.Context, logger *logrus.Logger, err error) {
	status, view := http.StatusInternalServerError, "500error"
	switch {
	case application.IsNotFound(err):
		status, view = http.StatusNotFound, "404error"
	case errors.Is(err, ErrInvalidID), errors.Is(err, application.ErrInvalidCommand),
		errors.Is(err, application.ErrImageTooLarge), errors.Is(err, application.ErrEmptyImage):
		status, view = http.StatusBadRequest, "400error"
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		}
	}
	c.HTML(status, view, gin.H{"exception": err.Error(), "status": status})
	c.Abort()
}

// NotFound handles unmatched routes: JSON under /api, the 404error view elsewhere.
func NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		response.Error[any](c, http.StatusNotFound, "route not found", nil)
		return
	}
	c.HTML(http.StatusNotFound, "404error", gin.H{"exception": "page not found", "status": http.StatusNotFound})
}
