package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oksasatya/recipe-app/config"
	"github.com/oksasatya/recipe-app/internal/domain/entity"
)

// OpenGorm wraps the pgx pool in a gorm handle; both share the same connections.
func OpenGorm(pool *pgxpool.Pool, debug bool) (*gorm.DB, error) {
	return gorm.Open(gormpg.New(gormpg.Config{Conn: stdlib.OpenDBFromPool(pool)}), gormConfig(debug))
}

// OpenSQLite opens (or creates) a SQLite database and migrates the schema with AutoMigrate.
// Used for local development and tests.
func OpenSQLite(path string, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig(debug))
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// one writer; also keeps an in-memory database alive on a single connection
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.UnitOfMeasure{},
		&entity.Category{},
		&entity.Recipe{},
		&entity.Ingredient{},
		&entity.Notes{},
	)
}

func gormConfig(debug bool) *gorm.Config {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}
	return &gorm.Config{Logger: gormlogger.Default.LogMode(level)}
}

// RunMigrations applies db/migrations to Postgres. No pending migration is not an error.
func RunMigrations(dsn string, migrationsDir string, logger *logrus.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}

// Open connects to the configured database. Postgres is migrated with golang-migrate, SQLite with
// AutoMigrate. The returned func releases the underlying connections.
func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*gorm.DB, func(), error) {
	debug := cfg.Env == "development"
	switch cfg.DBDriver {
	case "sqlite":
		db, err := OpenSQLite(cfg.SQLitePath, debug)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		return db, func() { closeGorm(db) }, nil
	case "postgres":
		pool, err := NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		db, err := OpenGorm(pool, debug)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return db, func() { closeGorm(db); pool.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func closeGorm(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
