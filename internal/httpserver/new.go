package httpserver

import (
	"database/sql"
	"errors"

	"insight-srv/config"
	"insight-srv/pkg/captions"
	"insight-srv/pkg/discord"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	"insight-srv/pkg/openai"
	pkgRedis "insight-srv/pkg/redis"
	"insight-srv/pkg/youtube"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// External Service Configuration
	youtubeClient  youtube.IYouTube
	captionsClient captions.ICaptions
	llm            openai.IOpenAI // nil selects the heuristic analysis tier

	// Messaging Configuration (optional)
	producer pkgKafka.IProducer

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// External Service Configuration
	YouTubeClient  youtube.IYouTube
	CaptionsClient captions.ICaptions
	LLM            openai.IOpenAI

	// Messaging Configuration (optional)
	Producer pkgKafka.IProducer

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// External Service Configuration
		youtubeClient:  cfg.YouTubeClient,
		captionsClient: cfg.CaptionsClient,
		llm:            cfg.LLM,

		// Messaging Configuration (optional)
		producer: cfg.Producer,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// External Service Configuration
	if srv.youtubeClient == nil {
		return errors.New("youtubeClient is required")
	}
	if srv.captionsClient == nil {
		return errors.New("captionsClient is required")
	}

	// LLM, Kafka producer and Discord are optional

	return nil
}
