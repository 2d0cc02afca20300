package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// YouTube - Data API v3 (metadata, comments, search)
	YouTube YouTubeConfig

	// Captions - timedtext transcripts
	Captions CaptionsConfig

	// OpenAI - LLM analysis tier (optional)
	OpenAI OpenAIConfig

	// PostgreSQL - Analysis history
	Postgres PostgresConfig

	// Redis - Response caching
	Redis RedisConfig

	// Kafka - Event publishing (optional)
	Kafka KafkaConfig

	// Analysis pipeline tuning
	Analysis AnalysisConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// YouTubeConfig is the configuration for the YouTube Data API
type YouTubeConfig struct {
	APIKey  string
	BaseURL string
	Timeout int // in seconds
}

// CaptionsConfig is the configuration for the timedtext captions client
type CaptionsConfig struct {
	BaseURL   string
	Languages []string
	Timeout   int // in seconds
}

// OpenAIConfig is the configuration for OpenAI. Same shape as pkg/openai.OpenAIConfig.
// An empty APIKey selects the heuristic analysis tier.
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// AnalysisConfig tunes the comment analysis pipeline.
type AnalysisConfig struct {
	DefaultCommentLimit int
	MaxReturnedComments int
	CacheTTL            int // in seconds, 0 disables caching
	TrendCacheTTL       int // in seconds
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("insight-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/insight/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// YouTube Data API
	cfg.YouTube.APIKey = viper.GetString("youtube.api_key")
	cfg.YouTube.BaseURL = viper.GetString("youtube.base_url")
	cfg.YouTube.Timeout = viper.GetInt("youtube.timeout")

	// Captions
	cfg.Captions.BaseURL = viper.GetString("captions.base_url")
	cfg.Captions.Languages = viper.GetStringSlice("captions.languages")
	cfg.Captions.Timeout = viper.GetInt("captions.timeout")

	// OpenAI - LLM tier
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")

	// PostgreSQL - Analysis history
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis - Response caching
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka - Event publishing (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// Analysis pipeline
	cfg.Analysis.DefaultCommentLimit = viper.GetInt("analysis.default_comment_limit")
	cfg.Analysis.MaxReturnedComments = viper.GetInt("analysis.max_returned_comments")
	cfg.Analysis.CacheTTL = viper.GetInt("analysis.cache_ttl")
	cfg.Analysis.TrendCacheTTL = viper.GetInt("analysis.trend_cache_ttl")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. YouTube Data API
	viper.SetDefault("youtube.base_url", "https://www.googleapis.com/youtube/v3")
	viper.SetDefault("youtube.timeout", 15)

	// 2. Captions
	viper.SetDefault("captions.base_url", "https://www.youtube.com/api/timedtext")
	viper.SetDefault("captions.languages", []string{"ko", "en"})
	viper.SetDefault("captions.timeout", 10)

	// 3. OpenAI
	viper.SetDefault("openai.model", "gpt-3.5-turbo")

	// 4. PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "insight")

	// 5. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 6. Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "insight.events")

	// 7. Analysis pipeline
	viper.SetDefault("analysis.default_comment_limit", 100)
	viper.SetDefault("analysis.max_returned_comments", 50)
	viper.SetDefault("analysis.cache_ttl", 600)        // 10 minutes
	viper.SetDefault("analysis.trend_cache_ttl", 1800) // 30 minutes
}

func validate(cfg *Config) error {
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.db_name is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// YouTube key is required; the whole service depends on the Data API.
	if cfg.YouTube.APIKey == "" {
		return fmt.Errorf("youtube.api_key is required")
	}

	if cfg.Analysis.MaxReturnedComments <= 0 {
		return fmt.Errorf("analysis.max_returned_comments must be greater than 0")
	}

	return nil
}
