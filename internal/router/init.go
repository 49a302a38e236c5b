package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oksasatya/recipe-app/internal/application"
	"github.com/oksasatya/recipe-app/internal/application/converter"
	"github.com/oksasatya/recipe-app/internal/container"
	pginfra "github.com/oksasatya/recipe-app/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/recipe-app/internal/interface/http"
	"github.com/oksasatya/recipe-app/internal/router/modules"
	"github.com/oksasatya/recipe-app/pkg/response"
)

// Deps holds every service and handler built from the container.
type Deps struct {
	Recipes     *application.RecipeService
	Ingredients *application.IngredientService
	Units       *application.UnitOfMeasureService
	Categories  *application.CategoryService
	Images      *application.ImageService
	Search      *application.SearchService

	Index           *handlers.IndexController
	RecipePages     *handlers.RecipeController
	IngredientPages *handlers.IngredientController
	ImagePages      *handlers.ImageController
	API             *handlers.APIHandler
}

func BuildDeps() Deps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetDB()
	events := container.GetPublisher()

	recipeRepo := pginfra.NewRecipeRepository(db)
	unitRepo := pginfra.NewUnitOfMeasureRepository(db)
	categoryRepo := pginfra.NewCategoryRepository(db)
	tx := pginfra.NewTransactor(db)
	conv := converter.NewSet()

	d := Deps{
		Recipes:     application.NewRecipeService(recipeRepo, categoryRepo, tx, conv, events, logger),
		Ingredients: application.NewIngredientService(recipeRepo, unitRepo, tx, conv, events, logger),
		Units:       application.NewUnitOfMeasureService(unitRepo, conv.UnitOfMeasureToCommand, container.GetRedis(), cfg.UOMCacheTTL, logger),
		Categories:  application.NewCategoryService(categoryRepo, conv.CategoryToCommand),
		Images:      application.NewImageService(recipeRepo, container.GetImageStore(), tx, cfg.MaxImageBytes, events, logger),
		Search:      application.NewSearchService(recipeRepo, container.GetES(), cfg.ESRecipesIndex, logger),
	}

	d.Index = handlers.NewIndexController(d.Recipes, logger)
	d.RecipePages = handlers.NewRecipeController(d.Recipes, d.Categories, logger)
	d.IngredientPages = handlers.NewIngredientController(d.Recipes, d.Ingredients, d.Units, logger)
	d.ImagePages = handlers.NewImageController(d.Recipes, d.Images, logger)
	d.API = handlers.NewAPIHandler(d.Recipes, d.Ingredients, d.Units, d.Search, conv.RecipeToCommand, logger)
	return d
}

// InitModules wires every module into the registry. Call once during startup.
func InitModules(r *Registry) {
	d := BuildDeps()

	r.AddWeb(modules.NewIndexModule(d.Index))
	r.AddWeb(modules.NewRecipeModule(d.RecipePages, d.ImagePages))
	r.AddWeb(modules.NewIngredientModule(d.IngredientPages))

	r.Add(modules.NewAPIModule(d.API))
	r.Add(healthModule(container.GetDB()))
	if cfg := container.GetConfig(); cfg != nil && cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(container.GetRedis()))
	}
}

// healthModule serves GET /api/healthz, which fails with 503 when the database does not answer.
func healthModule(db *gorm.DB) Module {
	return ModuleFunc(func(rg *gin.RouterGroup) {
		rg.GET("/healthz", func(c *gin.Context) {
			if db != nil {
				sqlDB, err := db.DB()
				if err == nil {
					err = sqlDB.PingContext(c.Request.Context())
				}
				if err != nil {
					response.Error[any](c, http.StatusServiceUnavailable, "database unavailable", nil)
					return
				}
			}
			response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "ok", nil)
		})
	})
}
