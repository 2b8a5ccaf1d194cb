package main

import (
	"context"
	"fmt"

	"trend-srv/config"
	configKafka "trend-srv/config/kafka"
	configPostgre "trend-srv/config/postgre"
	configRedis "trend-srv/config/redis"
	_ "trend-srv/docs" // Import swagger docs
	"trend-srv/internal/httpserver"
	"trend-srv/migrations"
	pkgJWT "trend-srv/pkg/jwt"
	pkgKafka "trend-srv/pkg/kafka"
	"trend-srv/pkg/log"
	"trend-srv/pkg/openrouter"
	pkgRedis "trend-srv/pkg/redis"
)

// @title       Product Trend Predictor API
// @description Sentiment, sales forecast and trend analysis for product mentions.
// @version     1
// @host        localhost:8080
// @schemes     http https
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name trend_auth_token
// @description Authentication token stored in HttpOnly cookie.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from .env, YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}
	if err := cfg.ValidateAPI(); err != nil {
		fmt.Println("Invalid API config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Initialize PostgreSQL
	// Shutdown is driven by httpServer.Run; the deferred disconnects run after it drains.
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	if cfg.Postgres.AutoMigrate {
		if err := configPostgre.Migrate(ctx, postgresDB, cfg.Postgres.Schema, migrations.FS); err != nil {
			logger.Error(ctx, "Failed to apply migrations: ", err)
			return
		}
		logger.Infof(ctx, "Migrations applied to schema %s", cfg.Postgres.Schema)
	}

	// 4. Initialize Redis (only when it backs the report cache)
	var redisClient pkgRedis.IRedis
	if cfg.Analysis.CacheBackend == config.CacheBackendRedis {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 5. Initialize Kafka producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer, err = configKafka.Connect(cfg.Kafka)
		if err != nil {
			logger.Warnf(ctx, "Kafka producer not available (optional): %v", err)
			kafkaProducer = nil
		} else {
			defer configKafka.Disconnect()
			logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
		}
	}

	// 6. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 7. Initialize LLM client (optional)
	llm, err := initializeLLM(ctx, cfg)
	if err != nil {
		logger.Warnf(ctx, "LLM disabled, using heuristic analysis: %v", err)
		llm = nil
	}

	// 8. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Messaging Configuration
		KafkaProducer: kafkaProducer,

		// Authentication & Security Configuration
		Config:     cfg,
		JWTManager: jwtManager,
		CookieName: cfg.Cookie.Name,

		// LLM Configuration
		LLM: llm,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// initializeLLM creates the OpenRouter client. A missing API key disables it.
func initializeLLM(ctx context.Context, cfg *config.Config) (openrouter.IOpenRouter, error) {
	return openrouter.New(ctx, openrouter.Config{
		APIKey:        cfg.OpenRouter.APIKey,
		BaseURL:       cfg.OpenRouter.BaseURL,
		PrimaryModel:  cfg.OpenRouter.PrimaryModel,
		FallbackModel: cfg.OpenRouter.FallbackModel,
		Temperature:   float32(cfg.OpenRouter.Temperature),
		MaxTokens:     cfg.OpenRouter.MaxTokens,
		Timeout:       cfg.OpenRouter.Timeout,
		Referer:       cfg.OpenRouter.Referer,
		Title:         cfg.OpenRouter.Title,
	})
}
