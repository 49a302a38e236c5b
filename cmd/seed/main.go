package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/oksasatya/recipe-app/config"
	"github.com/oksasatya/recipe-app/internal/application"
	"github.com/oksasatya/recipe-app/internal/application/converter"
	"github.com/oksasatya/recipe-app/internal/domain/entity"
	"github.com/oksasatya/recipe-app/internal/domain/repository"
	pginfra "github.com/oksasatya/recipe-app/internal/infrastructure/postgres"
	"github.com/oksasatya/recipe-app/pkg/helpers"
)

var (
	seedUnits      = []string{"Teaspoon", "Tablespoon", "Cup", "Pinch", "Ounce", "Each", "Dash", "Pint"}
	seedCategories = []string{"American", "Italian", "Mexican", "Fast Food"}
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	db, closeDB, err := pginfra.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer closeDB()

	if err := seed(ctx, db, logger); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()
	refreshUnitCache(ctx, db, rdb, logger)
}

// refreshUnitCache drops the cached unit list so the web app picks up seeded units.
func refreshUnitCache(ctx context.Context, db *gorm.DB, rdb *redis.Client, logger *logrus.Logger) {
	units := application.NewUnitOfMeasureService(pginfra.NewUnitOfMeasureRepository(db), converter.NewUnitOfMeasureToCommand(), rdb, 0, logger)
	units.InvalidateCache(ctx)
}

// seed creates the reference data and the two sample recipes. Running it again changes nothing.
func seed(ctx context.Context, db *gorm.DB, logger *logrus.Logger) error {
	units := pginfra.NewUnitOfMeasureRepository(db)
	categories := pginfra.NewCategoryRepository(db)
	recipes := pginfra.NewRecipeRepository(db)
	tx := pginfra.NewTransactor(db)

	return tx.WithinTx(ctx, func(ctx context.Context) error {
		uom := make(map[string]*entity.UnitOfMeasure, len(seedUnits))
		for _, d := range seedUnits {
			u, err := units.FindByDescription(ctx, d)
			if errors.Is(err, repository.ErrNotFound) {
				u, err = units.Save(ctx, &entity.UnitOfMeasure{Description: d})
			}
			if err != nil {
				return fmt.Errorf("unit %s: %w", d, err)
			}
			uom[d] = u
		}

		cat := make(map[string]*entity.Category, len(seedCategories))
		for _, d := range seedCategories {
			c, err := categories.FindByDescription(ctx, d)
			if errors.Is(err, repository.ErrNotFound) {
				c, err = categories.Save(ctx, &entity.Category{Description: d})
			}
			if err != nil {
				return fmt.Errorf("category %s: %w", d, err)
			}
			cat[d] = c
		}

		existing, err := recipes.FindAll(ctx)
		if err != nil {
			return err
		}
		have := make(map[string]bool, len(existing))
		for _, r := range existing {
			have[r.Description] = true
		}

		for _, r := range []*entity.Recipe{guacamole(uom, cat), tacos(uom, cat)} {
			if have[r.Description] {
				logger.WithField("recipe", r.Description).Info("recipe already seeded")
				continue
			}
			saved, err := recipes.Save(ctx, r)
			if err != nil {
				return fmt.Errorf("recipe %s: %w", r.Description, err)
			}
			logger.WithFields(logrus.Fields{"recipe": saved.Description, "id": saved.ID}).Info("seeded recipe")
		}
		return nil
	})
}

func ingredient(desc, amount string, u *entity.UnitOfMeasure) *entity.Ingredient {
	ing := &entity.Ingredient{Description: desc, Amount: decimal.RequireFromString(amount)}
	ing.SetUnitOfMeasure(u)
	return ing
}

func guacamole(uom map[string]*entity.UnitOfMeasure, cat map[string]*entity.Category) *entity.Recipe {
	r := &entity.Recipe{
		Description: "Perfect Guacamole",
		PrepTime:    10,
		CookTime:    1,
		Servings:    4,
		Source:      "Simply Recipes",
		URL:         "https://www.simplyrecipes.com/recipes/perfect_guacamole/",
		Difficulty:  entity.DifficultyEasy,
		Directions: "1 Cut avocado, remove flesh: Cut the avocados in half. Remove seed. Score the inside of the avocado with a blunt knife and scoop out with a spoon.\n" +
			"2 Mash with a fork: Using a fork, roughly mash the avocado. (Don't overdo it! The guacamole should be a little chunky.)\n" +
			"3 Add salt, lime juice, and the rest: Sprinkle with salt and lime (or lemon) juice. Add the chopped onion, cilantro, black pepper, and chiles.\n" +
			"4 Cover with plastic and chill to store: Place plastic wrap on the surface of the guacamole to prevent air reaching it. Refrigerate until ready to serve.",
		Notes: &entity.Notes{RecipeNotes: "For a very quick guacamole just take a 1/4 cup of salsa and mix it in with your mashed avocados.\n" +
			"Be careful handling chiles if using. Wash your hands thoroughly after handling and do not touch your eyes."},
		Categories: []*entity.Category{cat["American"], cat["Mexican"]},
	}
	r.AddIngredient(ingredient("ripe avocados", "2", uom["Each"]))
	r.AddIngredient(ingredient("Kosher salt", "0.5", uom["Teaspoon"]))
	r.AddIngredient(ingredient("fresh lime juice or lemon juice", "2", uom["Tablespoon"]))
	r.AddIngredient(ingredient("minced red onion or thinly sliced green onion", "2", uom["Tablespoon"]))
	r.AddIngredient(ingredient("serrano chiles, stems and seeds removed, minced", "2", uom["Each"]))
	r.AddIngredient(ingredient("Cilantro", "2", uom["Tablespoon"]))
	r.AddIngredient(ingredient("freshly grated black pepper", "2", uom["Dash"]))
	r.AddIngredient(ingredient("ripe tomato, seeds and pulp removed, chopped", "0.5", uom["Each"]))
	return r
}

func tacos(uom map[string]*entity.UnitOfMeasure, cat map[string]*entity.Category) *entity.Recipe {
	r := &entity.Recipe{
		Description: "Spicy Grilled Chicken Tacos",
		PrepTime:    20,
		CookTime:    9,
		Servings:    6,
		Source:      "Simply Recipes",
		URL:         "https://www.simplyrecipes.com/recipes/spicy_grilled_chicken_tacos/",
		Difficulty:  entity.DifficultyModerate,
		Directions: "1 Prepare a gas or charcoal grill for medium-high, direct heat.\n" +
			"2 Make the marinade and coat the chicken: In a large bowl, stir together the chili powder, oregano, cumin, sugar, salt, garlic and orange zest. Stir in the orange juice and olive oil to make a loose paste. Add the chicken to the bowl and toss to coat all over.\n" +
			"3 Grill the chicken: Grill the chicken for 3 to 4 minutes per side, or until a thermometer inserted into the thickest part of the meat registers 165F. Transfer to a plate and rest for 5 minutes.\n" +
			"4 Warm the tortillas: Place each tortilla on the grill or on a hot, dry skillet over medium-high heat.\n" +
			"5 Assemble the tacos: Slice the chicken into strips. On each tortilla, place a small handful of arugula. Top with chicken slices, sliced avocado, radishes, tomatoes, and onion slices. Drizzle with the thinned sour cream. Serve with lime wedges.",
		Notes:      &entity.Notes{RecipeNotes: "Look for ancho chile powder with the Mexican ingredients at your grocery store, or buy it online."},
		Categories: []*entity.Category{cat["American"], cat["Mexican"]},
	}
	r.AddIngredient(ingredient("Ancho Chili Powder", "2", uom["Tablespoon"]))
	r.AddIngredient(ingredient("Dried Oregano", "1", uom["Teaspoon"]))
	r.AddIngredient(ingredient("Dried Cumin", "1", uom["Teaspoon"]))
	r.AddIngredient(ingredient("Sugar", "1", uom["Teaspoon"]))
	r.AddIngredient(ingredient("Salt", "0.5", uom["Teaspoon"]))
	r.AddIngredient(ingredient("clove of garlic, chopped", "1", uom["Each"]))
	r.AddIngredient(ingredient("finely grated orange zest", "1", uom["Tablespoon"]))
	r.AddIngredient(ingredient("fresh-squeezed orange juice", "3", uom["Tablespoon"]))
	r.AddIngredient(ingredient("Olive Oil", "2", uom["Tablespoon"]))
	r.AddIngredient(ingredient("boneless chicken thighs", "4", uom["Each"]))
	r.AddIngredient(ingredient("small corn tortillas", "8", uom["Each"]))
	r.AddIngredient(ingredient("packed baby arugula", "3", uom["Cup"]))
	r.AddIngredient(ingredient("medium ripe avocados, sliced", "2", uom["Each"]))
	r.AddIngredient(ingredient("radishes, thinly sliced", "4", uom["Each"]))
	r.AddIngredient(ingredient("cherry tomatoes, halved", "0.5", uom["Pint"]))
	r.AddIngredient(ingredient("red onion, thinly sliced", "0.25", uom["Each"]))
	r.AddIngredient(ingredient("Roughly chopped cilantro", "4", uom["Each"]))
	r.AddIngredient(ingredient("sour cream thinned with 1/4 cup milk", "4", uom["Tablespoon"]))
	r.AddIngredient(ingredient("lime, cut into wedges", "4", uom["Each"]))
	return r
}
