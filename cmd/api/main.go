package main

import (
	"context"
	"fmt"
	"time"

	"insight-srv/config"
	configKafka "insight-srv/config/kafka"
	configPostgre "insight-srv/config/postgre"
	configRedis "insight-srv/config/redis"
	_ "insight-srv/docs" // Import swagger docs
	"insight-srv/internal/httpserver"
	"insight-srv/pkg/captions"
	"insight-srv/pkg/discord"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	"insight-srv/pkg/openai"
	"insight-srv/pkg/youtube"
)

// @title       Insight Service API
// @description YouTube video comment and trend analysis API documentation.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
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
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize Kafka producer (optional)
	producer, err := connectProducer(cfg)
	if err != nil {
		logger.Warnf(ctx, "Kafka producer not configured (optional): %v", err)
	} else if producer != nil {
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// 6. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 7. Initialize YouTube Data API client
	youtubeClient, err := youtube.New(logger, youtube.YouTubeConfig{
		APIKey:  cfg.YouTube.APIKey,
		BaseURL: cfg.YouTube.BaseURL,
		Timeout: time.Duration(cfg.YouTube.Timeout) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize YouTube client: ", err)
		return
	}

	// 8. Initialize captions client
	captionsClient := captions.New(logger, captions.CaptionsConfig{
		BaseURL:   cfg.Captions.BaseURL,
		Languages: cfg.Captions.Languages,
		Timeout:   time.Duration(cfg.Captions.Timeout) * time.Second,
	})

	// 9. Initialize OpenAI client (optional, missing key selects the heuristic tier)
	var llm openai.IOpenAI
	if cfg.OpenAI.APIKey != "" {
		llm, err = openai.New(openai.OpenAIConfig{
			APIKey: cfg.OpenAI.APIKey,
			Model:  cfg.OpenAI.Model,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
			return
		}
		logger.Infof(ctx, "OpenAI client initialized (model %s)", cfg.OpenAI.Model)
	} else {
		logger.Infof(ctx, "OpenAI API key not set, heuristic analysis tier selected")
	}

	// 10. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// External Service Configuration
		YouTubeClient:  youtubeClient,
		CaptionsClient: captionsClient,
		LLM:            llm,

		// Messaging Configuration (optional)
		Producer: producer,

		// Monitoring & Notification Configuration
		Discord: discordClient,
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

// connectProducer connects the Kafka producer when brokers are configured.
// Returns (nil, nil) when Kafka is not configured at all.
func connectProducer(cfg *config.Config) (pkgKafka.IProducer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, nil
	}
	return configKafka.ConnectProducer(cfg.Kafka)
}
