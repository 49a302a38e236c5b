package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recipe-app/internal/domain/event"
	repo "github.com/oksasatya/recipe-app/internal/domain/repository"
)

var (
	ErrImageTooLarge = errors.New("image too large")
	ErrEmptyImage    = errors.New("image is empty")
)

// ImageStore uploads an object and returns its public URL. Implemented by helpers.GCSImageStore.
type ImageStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// ImageService attaches an uploaded image to a recipe.
// With a Store the image goes to object storage and only its URL is kept on the recipe;
// without one the bytes are stored on the recipe row.
type ImageService struct {
	Recipes  repo.RecipeRepository
	Store    ImageStore
	Tx       repo.Transactor
	MaxBytes int64
	Events   JSONPublisher
	Logger   *logrus.Logger
}

func NewImageService(recipes repo.RecipeRepository, store ImageStore, tx repo.Transactor, maxBytes int64, events JSONPublisher, logger *logrus.Logger) *ImageService {
	return &ImageService{Recipes: recipes, Store: store, Tx: tx, MaxBytes: maxBytes, Events: events, Logger: logger}
}

func (s *ImageService) SaveImageFile(ctx context.Context, recipeID int64, filename, contentType string, r io.Reader) error {
	if _, err := loadRecipe(ctx, s.Recipes, recipeID); err != nil {
		return err
	}

	data, err := s.readLimited(r)
	if err != nil {
		return err
	}

	var url string
	if s.Store != nil {
		url, err = s.Store.Upload(ctx, objectPathFor(recipeID, filename), contentType, bytes.NewReader(data))
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("recipe_id", recipeID).Error("image upload failed")
			}
			return fmt.Errorf("upload image: %w", err)
		}
	}

	err = withinTx(ctx, s.Tx, func(ctx context.Context) error {
		rec, err := loadRecipe(ctx, s.Recipes, recipeID)
		if err != nil {
			return err
		}
		if url != "" {
			rec.ImageURL = url
			rec.Image = nil
		} else {
			rec.Image = data
			rec.ImageURL = ""
		}
		_, err = s.Recipes.Save(ctx, rec)
		return err
	})
	if err != nil {
		return err
	}

	publishRecipeEvent(ctx, s.Events, s.Logger, event.RecipeSaved, recipeID)
	return nil
}

func (s *ImageService) readLimited(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, ErrEmptyImage
	}
	if s.MaxBytes > 0 {
		r = io.LimitReader(r, s.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if s.MaxBytes > 0 && int64(len(data)) > s.MaxBytes {
		return nil, ErrImageTooLarge
	}
	return data, nil
}

func objectPathFor(recipeID int64, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return filepath.ToSlash(filepath.Join("recipes", strconv.FormatInt(recipeID, 10), uuid.NewString()+ext))
}
