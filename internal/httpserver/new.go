package httpserver

import (
	"database/sql"
	"errors"

	"trend-srv/config"
	pkgKafka "trend-srv/pkg/kafka"
	"trend-srv/pkg/log"
	"trend-srv/pkg/openrouter"
	pkgRedis "trend-srv/pkg/redis"
	"trend-srv/pkg/scope"

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

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Messaging Configuration
	kafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager scope.Manager
	cookieName string

	// LLM Configuration
	llm openrouter.IOpenRouter
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB
	// RedisClient is optional. It backs the report cache when analysis.cache_backend is redis.
	RedisClient pkgRedis.IRedis

	// KafkaProducer is optional.
	KafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager scope.Manager
	CookieName string

	// LLM is optional. Without it sentiment and trend fall back to heuristics.
	LLM openrouter.IOpenRouter
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Messaging Configuration
		kafkaProducer: cfg.KafkaProducer,

		// Authentication & Security Configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,
		cookieName: cfg.CookieName,

		// LLM Configuration
		llm: cfg.LLM,
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

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.config.Analysis.CacheBackend == config.CacheBackendRedis && srv.redisClient == nil {
		return errors.New("redisClient is required for the redis cache backend")
	}

	return nil
}
