package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/oksasatya/recipe-app/internal/application"
	"github.com/oksasatya/recipe-app/internal/application/command"
	"github.com/oksasatya/recipe-app/internal/application/converter"
	"github.com/oksasatya/recipe-app/internal/domain/entity"
	"github.com/oksasatya/recipe-app/internal/domain/repository"
)

func testDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	db, err := OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), false)
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

type fixtures struct {
	teaspoon *entity.UnitOfMeasure
	cup      *entity.UnitOfMeasure
	mexican  *entity.Category
	american *entity.Category
}

func seedReferences(tb testing.TB, db *gorm.DB) fixtures {
	tb.Helper()
	ctx := context.Background()
	f := fixtures{
		teaspoon: &entity.UnitOfMeasure{Description: "Teaspoon"},
		cup:      &entity.UnitOfMeasure{Description: "Cup"},
		mexican:  &entity.Category{Description: "Mexican"},
		american: &entity.Category{Description: "American"},
	}
	units := NewUnitOfMeasureRepository(db)
	cats := NewCategoryRepository(db)
	for _, u := range []*entity.UnitOfMeasure{f.teaspoon, f.cup} {
		if err := units.Save(ctx, u); err != nil {
			tb.Fatalf("save unit: %v", err)
		}
	}
	for _, c := range []*entity.Category{f.mexican, f.american} {
		if err := cats.Save(ctx, c); err != nil {
			tb.Fatalf("save category: %v", err)
		}
	}
	return f
}

func guacamole(f fixtures) *entity.Recipe {
	r := &entity.Recipe{
		Description: "Perfect Guacamole",
		PrepTime:    10,
		Servings:    4,
		Directions:  "Mash the avocados.",
		Difficulty:  entity.DifficultyEasy,
		Categories:  []*entity.Category{f.mexican},
	}
	r.SetNotes(&entity.Notes{RecipeNotes: "Use ripe avocados."})
	avocado := &entity.Ingredient{Description: "ripe avocados", Amount: decimal.NewFromInt(2)}
	salt := &entity.Ingredient{Description: "salt", Amount: decimal.RequireFromString("0.25")}
	salt.SetUnitOfMeasure(f.teaspoon)
	lime := &entity.Ingredient{Description: "lime juice", Amount: decimal.NewFromInt(1)}
	lime.SetUnitOfMeasure(f.cup)
	r.AddIngredient(avocado)
	r.AddIngredient(salt)
	r.AddIngredient(lime)
	return r
}

func TestRecipeRepositorySaveNewAssignsIDs(t *testing.T) {
	db := testDB(t)
	f := seedReferences(t, db)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, guacamole(f))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == 0 {
		t.Fatalf("recipe id not assigned")
	}
	if len(saved.Ingredients) != 3 {
		t.Fatalf("ingredients: got=%d want=3", len(saved.Ingredients))
	}
	for _, ing := range saved.Ingredients {
		if ing.ID == 0 || ing.RecipeID != saved.ID {
			t.Fatalf("ingredient not persisted with back-reference: %+v", ing)
		}
	}
	salt := saved.Ingredients[1]
	if salt.UnitOfMeasure == nil || salt.UnitOfMeasure.Description != "Teaspoon" {
		t.Fatalf("unit not preloaded: %+v", salt.UnitOfMeasure)
	}
	if !salt.Amount.Equal(decimal.RequireFromString("0.25")) {
		t.Fatalf("amount: got=%s", salt.Amount)
	}
	if saved.Notes == nil || saved.Notes.RecipeID != saved.ID || saved.Notes.RecipeNotes != "Use ripe avocados." {
		t.Fatalf("notes: %+v", saved.Notes)
	}
	if len(saved.Categories) != 1 || saved.Categories[0].Description != "Mexican" {
		t.Fatalf("categories: %+v", saved.Categories)
	}
}

func TestRecipeRepositorySaveRemovesOrphanIngredients(t *testing.T) {
	db := testDB(t)
	f := seedReferences(t, db)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, guacamole(f))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	removed := saved.Ingredients[1].ID
	if !saved.RemoveIngredient(removed) {
		t.Fatalf("RemoveIngredient(%d) reported nothing removed", removed)
	}
	if _, err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.FindByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(got.Ingredients) != 2 || got.FindIngredient(removed) != nil {
		t.Fatalf("orphan not removed: %+v", got.Ingredients)
	}
	var count int64
	db.Model(&entity.Ingredient{}).Where("id = ?", removed).Count(&count)
	if count != 0 {
		t.Fatalf("ingredient row %d still exists", removed)
	}
}

func TestRecipeRepositorySaveReplacesCategoriesAndNotes(t *testing.T) {
	db := testDB(t)
	f := seedReferences(t, db)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, guacamole(f))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	notesID := saved.Notes.ID
	saved.Categories = []*entity.Category{f.american}
	saved.SetNotes(&entity.Notes{RecipeNotes: "Serve right away."})

	got, err := repo.Save(ctx, saved)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(got.Categories) != 1 || got.Categories[0].ID != f.american.ID {
		t.Fatalf("categories: %+v", got.Categories)
	}
	if got.Notes == nil || got.Notes.ID != notesID || got.Notes.RecipeNotes != "Serve right away." {
		t.Fatalf("notes should be updated in place: %+v", got.Notes)
	}

	got.Categories = nil
	got, err = repo.Save(ctx, got)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(got.Categories) != 0 {
		t.Fatalf("categories should be cleared: %+v", got.Categories)
	}
	var cats int64
	db.Model(&entity.Category{}).Count(&cats)
	if cats != 2 {
		t.Fatalf("categories themselves must survive, got %d", cats)
	}
}

func TestRecipeRepositoryFindAllAndNotFound(t *testing.T) {
	db := testDB(t)
	f := seedReferences(t, db)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	all, err := repo.FindAll(ctx)
	if err != nil || len(all) != 0 {
		t.Fatalf("empty FindAll: got=%v err=%v", all, err)
	}
	if _, err := repo.FindByID(ctx, 42); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := repo.Save(ctx, guacamole(f)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := repo.Save(ctx, &entity.Recipe{Description: "Spicy Grilled Chicken Tacos", Difficulty: entity.DifficultyModerate}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	all, err = repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 2 || len(all[0].Ingredients) != 3 || all[1].Description != "Spicy Grilled Chicken Tacos" {
		t.Fatalf("unexpected recipes: %+v", all)
	}
}

func TestRecipeRepositoryDeleteByID(t *testing.T) {
	db := testDB(t)
	f := seedReferences(t, db)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, guacamole(f))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.DeleteByID(ctx, saved.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if _, err := repo.FindByID(ctx, saved.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	var ings, notes int64
	db.Model(&entity.Ingredient{}).Count(&ings)
	db.Model(&entity.Notes{}).Count(&notes)
	if ings != 0 || notes != 0 {
		t.Fatalf("owned rows left behind: ingredients=%d notes=%d", ings, notes)
	}
	if err := repo.DeleteByID(ctx, saved.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestReferenceRepositories(t *testing.T) {
	db := testDB(t)
	f := seedReferences(t, db)
	ctx := context.Background()
	units := NewUnitOfMeasureRepository(db)
	cats := NewCategoryRepository(db)

	u, err := units.FindByDescription(ctx, "Cup")
	if err != nil || u.ID != f.cup.ID {
		t.Fatalf("FindByDescription: got=%+v err=%v", u, err)
	}
	if _, err := units.FindByID(ctx, 999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	all, err := units.FindAll(ctx)
	if err != nil || len(all) != 2 || all[0].Description != "Teaspoon" {
		t.Fatalf("FindAll units: got=%+v err=%v", all, err)
	}

	c, err := cats.FindByID(ctx, f.mexican.ID)
	if err != nil || c.Description != "Mexican" {
		t.Fatalf("FindByID category: got=%+v err=%v", c, err)
	}
	if _, err := cats.FindByDescription(ctx, "Thai"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTransactorRollsBack(t *testing.T) {
	db := testDB(t)
	f := seedReferences(t, db)
	repo := NewRecipeRepository(db)
	tx := NewTransactor(db)
	ctx := context.Background()

	errAbort := errors.New("abort")
	err := tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := repo.Save(ctx, guacamole(f)); err != nil {
			return err
		}
		all, err := repo.FindAll(ctx)
		if err != nil {
			return err
		}
		if len(all) != 1 {
			t.Errorf("recipe should be visible inside the transaction, got %d", len(all))
		}
		return errAbort
	})
	if !errors.Is(err, errAbort) {
		t.Fatalf("expected abort error, got %v", err)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("rolled back recipe is visible: %d", len(all))
	}
}

func TestIngredientServiceRoundTrip(t *testing.T) {
	db := testDB(t)
	f := seedReferences(t, db)
	recipes := NewRecipeRepository(db)
	ctx := context.Background()

	saved, err := recipes.Save(ctx, guacamole(f))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	svc := application.NewIngredientService(recipes, NewUnitOfMeasureRepository(db), NewTransactor(db), converter.NewSet(), nil, nil)

	created, err := svc.SaveIngredientCommand(ctx, &command.IngredientCommand{
		RecipeID:      saved.ID,
		Description:   "cilantro",
		Amount:        decimal.RequireFromString("0.5"),
		UnitOfMeasure: &command.UnitOfMeasureCommand{ID: f.cup.ID},
	})
	if err != nil {
		t.Fatalf("SaveIngredientCommand: %v", err)
	}
	if created.ID == 0 || created.RecipeID != saved.ID {
		t.Fatalf("unexpected command: %+v", created)
	}

	found, err := svc.FindByRecipeIDAndIngredientID(ctx, saved.ID, created.ID)
	if err != nil {
		t.Fatalf("FindByRecipeIDAndIngredientID: %v", err)
	}
	if found.Description != "cilantro" || found.UnitOfMeasure == nil || found.UnitOfMeasure.Description != "Cup" {
		t.Fatalf("unexpected ingredient: %+v", found)
	}

	if err := svc.RemoveIngredientOfRecipe(ctx, saved.ID, created.ID); err != nil {
		t.Fatalf("RemoveIngredientOfRecipe: %v", err)
	}
	if _, err := svc.FindByRecipeIDAndIngredientID(ctx, saved.ID, created.ID); !errors.Is(err, application.ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound, got %v", err)
	}
	if err := svc.RemoveIngredientOfRecipe(ctx, saved.ID+100, 1); !errors.Is(err, application.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestIngredientAmountKeepsStoredScale(t *testing.T) {
	db := testDB(t)
	f := seedReferences(t, db)
	recipes := NewRecipeRepository(db)
	ctx := context.Background()

	saved, err := recipes.Save(ctx, guacamole(f))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	svc := application.NewIngredientService(recipes, NewUnitOfMeasureRepository(db), NewTransactor(db), converter.NewSet(), nil, nil)

	created, err := svc.SaveIngredientCommand(ctx, &command.IngredientCommand{
		RecipeID:      saved.ID,
		Description:   "cumin",
		Amount:        decimal.RequireFromString("0.33333"),
		UnitOfMeasure: &command.UnitOfMeasureCommand{ID: f.teaspoon.ID},
	})
	if err != nil {
		t.Fatalf("SaveIngredientCommand: %v", err)
	}
	want := decimal.RequireFromString("0.3333")
	if !created.Amount.Equal(want) {
		t.Fatalf("Amount: got=%s want=%s", created.Amount, want)
	}

	reloaded, err := recipes.FindByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	ing := reloaded.FindIngredient(created.ID)
	if ing == nil || !ing.Amount.Equal(want) {
		t.Fatalf("stored ingredient: %+v", ing)
	}
}
