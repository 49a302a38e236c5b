package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/oksasatya/recipe-app/config"
	"github.com/oksasatya/recipe-app/internal/application"
)

// app-level container to share constructed components across packages.
// The router builds its modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	db          *gorm.DB
	redisClient *redis.Client
	imageStore  application.ImageStore
	publisher   application.JSONPublisher
	esClient    *elasticsearch.Client
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetDB(d *gorm.DB)           { db = d }
func GetDB() *gorm.DB            { return db }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }

// SetImageStore must only be called with a configured store; a nil store keeps images on the recipe row.
func SetImageStore(s application.ImageStore)   { imageStore = s }
func GetImageStore() application.ImageStore    { return imageStore }
func SetPublisher(p application.JSONPublisher) { publisher = p }
func GetPublisher() application.JSONPublisher  { return publisher }
func SetES(c *elasticsearch.Client)            { esClient = c }
func GetES() *elasticsearch.Client             { return esClient }

// Reset clears every singleton.
func Reset() {
	cfg, logger, db, redisClient = nil, nil, nil, nil
	imageStore, publisher, esClient = nil, nil, nil
}
