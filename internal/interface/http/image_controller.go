package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recipe-app/internal/application"
)

const viewImageUploadForm = "recipe/imageuploadform"

type ImageController struct {
	Recipes RecipeService
	Images  ImageSaver
	Logger  *logrus.Logger
}

func NewImageController(recipes RecipeService, images ImageSaver, logger *logrus.Logger) *ImageController {
	return &ImageController{Recipes: recipes, Images: images, Logger: logger}
}

func (h *ImageController) UploadForm(c *gin.Context) {
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
	c.HTML(http.StatusOK, viewImageUploadForm, gin.H{"recipe": recipe})
}

// Upload stores the multipart "imagefile" for the recipe.
func (h *ImageController) Upload(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	fh, err := c.FormFile("imagefile")
	if err != nil {
		renderError(c, h.Logger, fmt.Errorf("%w: missing imagefile", application.ErrEmptyImage))
		return
	}
	f, err := fh.Open()
	if err != nil {
		renderError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	if err := h.Images.SaveImageFile(c.Request.Context(), id, fh.Filename, fh.Header.Get("Content-Type"), f); err != nil {
		renderError(c, h.Logger, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/recipe/%d/show", id))
}

// RenderImage serves stored image bytes, or redirects to the object storage URL.
func (h *ImageController) RenderImage(c *gin.Context) {
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
	switch {
	case recipe.ImageURL != "":
		c.Redirect(http.StatusFound, recipe.ImageURL)
	case len(recipe.Image) > 0:
		c.Data(http.StatusOK, http.DetectContentType(recipe.Image), recipe.Image)
	default:
		c.Status(http.StatusNotFound)
	}
}
