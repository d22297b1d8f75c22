package main

import (
	"os"

	"video-hive/internal/app"
	"video-hive/pkg/cache"
	"video-hive/pkg/config"
	"video-hive/pkg/database"
	"video-hive/pkg/logger"
	"video-hive/pkg/queue"
	"video-hive/pkg/s3"

	"github.com/gin-gonic/gin"
)

// @title           VideoHive API
// @version         1.0
// @description     REST backend for a video-sharing platform: users, videos, tweets, comments, likes, subscriptions and playlists.

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.HasDefaultSecrets() {
		panic("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must be set in environment variables")
	}

	log := logger.New()
	if cfg.GinMode == gin.ReleaseMode {
		log = logger.NewJSON(os.Stdout)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Schema is normally managed by goose - see cmd/migrate/main.go
	if cfg.DBAutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Error("Failed to auto-migrate database: %v", err)
			panic(err)
		}
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, view dedupe and rate limiting disabled: %v", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg, log)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, domain events disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
