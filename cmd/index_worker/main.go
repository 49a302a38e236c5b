package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/oksasatya/recipe-app/config"
	"github.com/oksasatya/recipe-app/internal/application"
	pginfra "github.com/oksasatya/recipe-app/internal/infrastructure/postgres"
	"github.com/oksasatya/recipe-app/pkg/helpers"
)

// index_worker consumes recipe events and keeps the Elasticsearch recipe index in step.
func main() {
	reindex := flag.Bool("reindex", false, "index every stored recipe before consuming events")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-index-worker", cfg.Env)

	addrs := cfg.ESAddrs()
	if len(addrs) == 0 {
		log.Fatal("ELASTICSEARCH_ADDRS not configured")
	}
	es, err := helpers.NewESClient(helpers.ESOptions{Addrs: addrs, Username: cfg.ElasticsearchUser, Password: cfg.ElasticsearchPass})
	if err != nil {
		log.Fatalf("elasticsearch: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := helpers.PingES(ctx, es); err != nil {
		logger.WithError(err).Warn("elasticsearch not reachable; failed events will be retried")
	}

	db, closeDB, err := pginfra.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer closeDB()

	search := application.NewSearchService(pginfra.NewRecipeRepository(db), es, cfg.ESRecipesIndex, logger)
	if *reindex {
		n, err := search.ReindexAll(ctx)
		if err != nil {
			log.Fatalf("reindex: %v", err)
		}
		logger.WithField("recipes", n).Info("reindex complete")
	}

	handle := application.NewRecipeEventHandler(search, logger)
	switch cfg.EventsBroker {
	case "rabbitmq":
		logger.WithField("queue", cfg.RabbitMQRecipeQueue).Info("index worker listening")
		err = helpers.ConsumeRabbit(ctx, cfg.RabbitMQURL, cfg.RabbitMQRecipeQueue, 16, handle, logger)
	case "kafka":
		logger.WithField("topic", cfg.KafkaRecipeTopic).Info("index worker listening")
		err = helpers.ConsumeKafka(ctx, cfg.KafkaBrokerList(), cfg.KafkaRecipeTopic, cfg.KafkaGroupID, handle, logger)
	default:
		logger.WithField("broker", cfg.EventsBroker).Info("no event broker configured; index worker idle")
		return
	}
	if err != nil {
		log.Fatalf("consume: %v", err)
	}
	logger.Info("index worker stopped")
}
