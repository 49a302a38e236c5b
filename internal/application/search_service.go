package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recipe-app/internal/domain/entity"
	repo "github.com/oksasatya/recipe-app/internal/domain/repository"
)

// SearchService keeps the Elasticsearch recipe index in sync and queries it.
type SearchService struct {
	Recipes repo.RecipeRepository
	ES      *elasticsearch.Client
	Index   string
	Logger  *logrus.Logger
}

func NewSearchService(recipes repo.RecipeRepository, es *elasticsearch.Client, index string, logger *logrus.Logger) *SearchService {
	return &SearchService{Recipes: recipes, ES: es, Index: index, Logger: logger}
}

// RecipeDocument is the indexed shape of a recipe.
type RecipeDocument struct {
	ID          int64    `json:"id"`
	Description string   `json:"description"`
	Directions  string   `json:"directions"`
	Difficulty  string   `json:"difficulty"`
	Source      string   `json:"source,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Ingredients []string `json:"ingredients"`
	Categories  []string `json:"categories"`
	IndexedAt   string   `json:"indexed_at"`
}

type RecipeHit struct {
	ID          int64    `json:"id"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	Categories  []string `json:"categories"`
	Score       float64  `json:"score"`
}

func (s *SearchService) enabled() bool {
	return s != nil && s.ES != nil && s.Index != ""
}

// NewRecipeDocument flattens a recipe aggregate for indexing.
func NewRecipeDocument(r *entity.Recipe) RecipeDocument {
	doc := RecipeDocument{
		ID:          r.ID,
		Description: r.Description,
		Directions:  r.Directions,
		Difficulty:  string(r.Difficulty),
		Source:      r.Source,
		Ingredients: make([]string, 0, len(r.Ingredients)),
		Categories:  make([]string, 0, len(r.Categories)),
		IndexedAt:   time.Now().UTC().Format(time.RFC3339Nano),
	}
	if r.Notes != nil {
		doc.Notes = r.Notes.RecipeNotes
	}
	for _, ing := range r.Ingredients {
		if ing != nil {
			doc.Ingredients = append(doc.Ingredients, ing.Description)
		}
	}
	for _, c := range r.Categories {
		if c != nil {
			doc.Categories = append(doc.Categories, c.Description)
		}
	}
	return doc
}

// IndexRecipe loads the recipe and (re)indexes it. A recipe that no longer exists is removed.
func (s *SearchService) IndexRecipe(ctx context.Context, recipeID int64) error {
	if !s.enabled() {
		return nil
	}
	r, err := loadRecipe(ctx, s.Recipes, recipeID)
	if errors.Is(err, ErrRecipeNotFound) {
		return s.RemoveRecipe(ctx, recipeID)
	}
	if err != nil {
		return err
	}

	b, err := json.Marshal(NewRecipeDocument(r))
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: s.Index, DocumentID: strconv.FormatInt(r.ID, 10), Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("recipe_id", recipeID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index recipe %d: %s", recipeID, res.Status())
	}
	return nil
}

// RemoveRecipe deletes the recipe document; a missing document is not an error.
func (s *SearchService) RemoveRecipe(ctx context.Context, recipeID int64) error {
	if !s.enabled() {
		return nil
	}
	req := esapi.DeleteRequest{Index: s.Index, DocumentID: strconv.FormatInt(recipeID, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("es delete recipe %d: %s", recipeID, res.Status())
	}
	return nil
}

// Search performs a multi_match query over description, directions, ingredients and categories.
func (s *SearchService) Search(ctx context.Context, q string, size int) ([]RecipeHit, error) {
	if !s.enabled() {
		return []RecipeHit{}, nil
	}
	switch {
	case size <= 0:
		size = 10
	case size > 50:
		size = 50
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"description^3", "ingredients^2", "categories", "directions", "notes"},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.Index), s.ES.Search.WithBody(bytes.NewReader(b)))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Score  float64        `json:"_score"`
				Source RecipeDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]RecipeHit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, RecipeHit{
			ID:          h.Source.ID,
			Description: h.Source.Description,
			Difficulty:  h.Source.Difficulty,
			Categories:  h.Source.Categories,
			Score:       h.Score,
		})
	}
	return out, nil
}
