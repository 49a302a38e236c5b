package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/oksasatya/recipe-app/config"
	"github.com/oksasatya/recipe-app/internal/domain/entity"
	"github.com/oksasatya/recipe-app/pkg/helpers"
)

func TestOpenSQLiteFromConfig(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "recipes.db"), Env: "test"}
	db, closeDB, err := Open(context.Background(), cfg, helpers.NewNopLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closeDB()

	for _, model := range []any{&entity.UnitOfMeasure{}, &entity.Category{}, &entity.Recipe{}, &entity.Ingredient{}, &entity.Notes{}} {
		if !db.Migrator().HasTable(model) {
			t.Fatalf("table for %T not migrated", model)
		}
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), &config.Config{DBDriver: "mysql"}, helpers.NewNopLogger())
	if err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestPoolConfigCarriesSettings(t *testing.T) {
	cfg := &config.Config{
		AppName:       "recipe-app",
		DBHost:        "db.internal",
		DBPort:        "5433",
		DBUser:        "chef",
		DBPassword:    "secret",
		DBName:        "recipes",
		DBSSLMode:     "disable",
		DBMaxConns:    7,
		DBMinConns:    1,
		DBMaxConnLife: 30 * time.Minute,
	}
	pc, err := poolConfig(cfg)
	if err != nil {
		t.Fatalf("poolConfig: %v", err)
	}
	if pc.MaxConns != 7 || pc.MinConns != 1 || pc.MaxConnLifetime != 30*time.Minute {
		t.Fatalf("limits: max=%d min=%d life=%s", pc.MaxConns, pc.MinConns, pc.MaxConnLifetime)
	}
	if pc.ConnConfig.Host != "db.internal" || pc.ConnConfig.Port != 5433 || pc.ConnConfig.Database != "recipes" {
		t.Fatalf("conn: %+v", pc.ConnConfig)
	}
	if got := pc.ConnConfig.RuntimeParams["application_name"]; got != "recipe-app" {
		t.Fatalf("application_name: got=%q", got)
	}
}
