package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/recipe-app/config"
	"github.com/oksasatya/recipe-app/internal/container"
	pginfra "github.com/oksasatya/recipe-app/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/recipe-app/internal/interface/http"
	"github.com/oksasatya/recipe-app/internal/interface/middleware"
	"github.com/oksasatya/recipe-app/internal/router"
	"github.com/oksasatya/recipe-app/pkg/helpers"
	"github.com/oksasatya/recipe-app/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	db, closeDB, err := pginfra.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer closeDB()

	// Redis (UoM cache, rate limiting); both degrade gracefully when it is down
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetDB(db)
	container.SetRedis(rdb)

	if cfg.GCSBucket != "" {
		gcsClient, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			log.Fatalf("failed to init GCS client: %v", err)
		}
		defer func() { _ = gcsClient.Close() }()
		container.SetImageStore(helpers.NewGCSImageStore(gcsClient, cfg.GCSBucket))
	} else {
		logger.Info("GCS_BUCKET not set; recipe images are stored in the database")
	}

	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		es, err := helpers.NewESClient(helpers.ESOptions{Addrs: addrs, Username: cfg.ElasticsearchUser, Password: cfg.ElasticsearchPass})
		if err != nil {
			logger.WithError(err).Warn("elasticsearch disabled")
		} else {
			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := helpers.PingES(pingCtx, es); err != nil {
				logger.WithError(err).Warn("elasticsearch not reachable yet; search requests will fail until it is")
			}
			cancel()
			container.SetES(es)
		}
	}

	pub, closePub := newPublisher(cfg, logger)
	defer closePub()
	if pub != nil {
		container.SetPublisher(pub)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if err := handlers.LoadTemplates(r); err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}
	r.NoRoute(handlers.NotFound)
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP(true))
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(middleware.AccessLog(logger))
	}

	reg := router.NewRegistry(r)
	reg.UseWeb(middleware.RateLimit(rdb, cfg.RateLimitPerMinute, time.Minute, middleware.KeyByIP(),
		middleware.AnyOf(middleware.AllowPrivateIP(), middleware.AllowReads())))
	reg.UseAPI(middleware.RateLimit(rdb, cfg.RateLimitPerMinute, time.Minute, middleware.KeyByIPAndPath(),
		middleware.AllowPrivateIP()))
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

// jsonPublisher is what the services need plus Close.
type jsonPublisher interface {
	PublishJSON(ctx context.Context, body any) error
	Close()
}

// newPublisher picks the recipe event broker. A broker that cannot be reached disables events
// instead of failing startup.
func newPublisher(cfg *config.Config, logger *logrus.Logger) (jsonPublisher, func()) {
	var (
		pub jsonPublisher
		err error
	)
	switch cfg.EventsBroker {
	case "rabbitmq":
		pub, err = helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQRecipeQueue)
	case "kafka":
		pub = helpers.NewKafkaPublisher(cfg.KafkaBrokerList(), cfg.KafkaRecipeTopic)
	case "none", "":
		logger.Info("recipe events disabled")
		return nil, func() {}
	default:
		logger.WithField("broker", cfg.EventsBroker).Warn("unknown EVENTS_BROKER; recipe events disabled")
		return nil, func() {}
	}
	if err != nil {
		logger.WithError(err).WithField("broker", cfg.EventsBroker).Warn("recipe events disabled")
		return nil, func() {}
	}
	logger.WithField("broker", cfg.EventsBroker).Info("publishing recipe events")
	return pub, pub.Close
}
