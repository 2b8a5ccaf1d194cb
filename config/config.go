package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Stored analyses, sales history
	Postgres PostgresConfig

	// Redis - Shared report cache (optional)
	Redis RedisConfig

	// Kafka - Event publishing (optional)
	Kafka KafkaConfig

	// JWT - Authentication
	JWT    JWTConfig
	Cookie CookieConfig

	// OpenRouter - LLM
	OpenRouter OpenRouterConfig

	// Sources
	SourceHTTP   SourceHTTPConfig
	Reddit       RedditConfig
	Twitter      TwitterConfig
	YouTube      YouTubeConfig
	News         NewsConfig
	GoogleTrends GoogleTrendsConfig
	Ecommerce    EcommerceConfig

	// Analysis pipeline
	Analysis AnalysisConfig
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

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string

	// AutoMigrate replays migrations/*.sql on start.
	AutoMigrate bool
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka. No brokers means no producer.
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// JWTConfig is used to verify tokens (same secret/issuer as auth service). This service does not issue tokens.
type JWTConfig struct {
	Issuer    string
	Audience  string
	SecretKey string
}

// CookieConfig names the auth cookie read when no Authorization header is sent.
type CookieConfig struct {
	Name string
}

// OpenRouterConfig is the configuration for the LLM gateway. An empty API key disables the LLM paths.
type OpenRouterConfig struct {
	APIKey        string
	BaseURL       string
	PrimaryModel  string
	FallbackModel string
	Temperature   float64
	MaxTokens     int
	Timeout       time.Duration
	Referer       string
	Title         string
}

// SourceHTTPConfig tunes the HTTP client shared by the API sources.
type SourceHTTPConfig struct {
	Timeout      time.Duration
	Retries      int
	RetryWait    time.Duration
	MaxRetryWait time.Duration
	RateLimit    float64
	Burst        int
	UserAgent    string
}

type RedditConfig struct {
	ClientID     string
	ClientSecret string
	UserAgent    string
	Subreddits   []string
	Pace         time.Duration
}

type TwitterConfig struct {
	BearerToken string
}

type YouTubeConfig struct {
	APIKey string
}

type NewsConfig struct {
	APIKey   string
	Language string
	Country  string
}

type GoogleTrendsConfig struct {
	Timeframe string
	Language  string
	TZ        string
}

type EcommerceConfig struct {
	AmazonBaseURL   string
	FlipkartBaseURL string
	MaxListings     int
}

// AnalysisConfig tunes the orchestrator.
type AnalysisConfig struct {
	CacheTTL        time.Duration
	CacheBackend    string
	ForecastPeriods int
	HistoryDays     int
	DefaultSources  []string
}

// Load loads configuration using Viper. Environment variables (including those
// read from .env) override the YAML file, which overrides the defaults.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	// Set config file name and paths
	viper.SetConfigName("trend-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/trend/")

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

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")
	cfg.Postgres.AutoMigrate = viper.GetBool("postgres.auto_migrate")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.ClientID = viper.GetString("kafka.client_id")

	// JWT & Cookie
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetString("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.Cookie.Name = viper.GetString("cookie.name")

	// OpenRouter
	cfg.OpenRouter.APIKey = viper.GetString("openrouter.api_key")
	cfg.OpenRouter.BaseURL = viper.GetString("openrouter.base_url")
	cfg.OpenRouter.PrimaryModel = viper.GetString("openrouter.primary_model")
	cfg.OpenRouter.FallbackModel = viper.GetString("openrouter.fallback_model")
	cfg.OpenRouter.Temperature = viper.GetFloat64("openrouter.temperature")
	cfg.OpenRouter.MaxTokens = viper.GetInt("openrouter.max_tokens")
	cfg.OpenRouter.Timeout = viper.GetDuration("openrouter.timeout")
	cfg.OpenRouter.Referer = viper.GetString("openrouter.referer")
	cfg.OpenRouter.Title = viper.GetString("openrouter.title")

	// Sources
	cfg.SourceHTTP.Timeout = viper.GetDuration("source_http.timeout")
	cfg.SourceHTTP.Retries = viper.GetInt("source_http.retries")
	cfg.SourceHTTP.RetryWait = viper.GetDuration("source_http.retry_wait")
	cfg.SourceHTTP.MaxRetryWait = viper.GetDuration("source_http.max_retry_wait")
	cfg.SourceHTTP.RateLimit = viper.GetFloat64("source_http.rate_limit")
	cfg.SourceHTTP.Burst = viper.GetInt("source_http.burst")
	cfg.SourceHTTP.UserAgent = viper.GetString("source_http.user_agent")

	cfg.Reddit.ClientID = viper.GetString("reddit.client_id")
	cfg.Reddit.ClientSecret = viper.GetString("reddit.client_secret")
	cfg.Reddit.UserAgent = viper.GetString("reddit.user_agent")
	cfg.Reddit.Subreddits = viper.GetStringSlice("reddit.subreddits")
	cfg.Reddit.Pace = viper.GetDuration("reddit.pace")

	cfg.Twitter.BearerToken = viper.GetString("twitter.bearer_token")
	cfg.YouTube.APIKey = viper.GetString("youtube.api_key")

	cfg.News.APIKey = viper.GetString("news.api_key")
	cfg.News.Language = viper.GetString("news.language")
	cfg.News.Country = viper.GetString("news.country")

	cfg.GoogleTrends.Timeframe = viper.GetString("google_trends.timeframe")
	cfg.GoogleTrends.Language = viper.GetString("google_trends.language")
	cfg.GoogleTrends.TZ = viper.GetString("google_trends.tz")

	cfg.Ecommerce.AmazonBaseURL = viper.GetString("ecommerce.amazon_base_url")
	cfg.Ecommerce.FlipkartBaseURL = viper.GetString("ecommerce.flipkart_base_url")
	cfg.Ecommerce.MaxListings = viper.GetInt("ecommerce.max_listings")

	// Analysis
	cfg.Analysis.CacheTTL = viper.GetDuration("analysis.cache_ttl")
	cfg.Analysis.CacheBackend = strings.ToLower(viper.GetString("analysis.cache_backend"))
	cfg.Analysis.ForecastPeriods = viper.GetInt("analysis.forecast_periods")
	cfg.Analysis.HistoryDays = viper.GetInt("analysis.history_days")
	cfg.Analysis.DefaultSources = viper.GetStringSlice("analysis.default_sources")

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

	// PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "trend")
	viper.SetDefault("postgres.auto_migrate", false)

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Kafka
	viper.SetDefault("kafka.brokers", []string{})
	viper.SetDefault("kafka.topic", "trend.analysis.completed")
	viper.SetDefault("kafka.client_id", "trend-srv")

	// JWT & Cookie
	viper.SetDefault("jwt.issuer", "trend-auth-service")
	viper.SetDefault("cookie.name", "trend_auth_token")

	// OpenRouter
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("openrouter.primary_model", "mistralai/mixtral-8x7b-instruct")
	viper.SetDefault("openrouter.fallback_model", "mistralai/mistral-7b-instruct")
	viper.SetDefault("openrouter.temperature", 0.1)
	viper.SetDefault("openrouter.max_tokens", 1500)
	viper.SetDefault("openrouter.timeout", 30*time.Second)
	viper.SetDefault("openrouter.referer", "http://localhost:3000")
	viper.SetDefault("openrouter.title", "Product Trend Predictor")

	// Sources
	viper.SetDefault("source_http.timeout", 15*time.Second)
	viper.SetDefault("source_http.retries", 2)
	viper.SetDefault("source_http.retry_wait", 1*time.Second)
	viper.SetDefault("source_http.max_retry_wait", 8*time.Second)
	viper.SetDefault("source_http.rate_limit", 0)
	viper.SetDefault("source_http.burst", 1)
	viper.SetDefault("reddit.user_agent", "ProductTrendPredictor/1.0")
	viper.SetDefault("reddit.pace", 1*time.Second)
	viper.SetDefault("news.language", "en")
	viper.SetDefault("google_trends.timeframe", "today 3-m")
	viper.SetDefault("google_trends.language", "en-US")
	viper.SetDefault("google_trends.tz", "360")
	viper.SetDefault("ecommerce.max_listings", 3)

	// Analysis
	viper.SetDefault("analysis.cache_ttl", 1800*time.Second)
	viper.SetDefault("analysis.cache_backend", CacheBackendMemory)
	viper.SetDefault("analysis.forecast_periods", 30)
	viper.SetDefault("analysis.history_days", 365)
	viper.SetDefault("analysis.default_sources", []string{})
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}

	if cfg.JWT.SecretKey != "" && len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}

	switch cfg.Analysis.CacheBackend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required when analysis.cache_backend is redis")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required when analysis.cache_backend is redis")
		}
	default:
		return fmt.Errorf("analysis.cache_backend must be %q or %q", CacheBackendMemory, CacheBackendRedis)
	}

	if cfg.Analysis.CacheTTL <= 0 {
		return fmt.Errorf("analysis.cache_ttl must be greater than 0")
	}
	if cfg.OpenRouter.Temperature < 0 || cfg.OpenRouter.Temperature > 2 {
		return fmt.Errorf("openrouter.temperature must be between 0 and 2")
	}

	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when kafka.brokers is set")
	}

	return nil
}

// ValidateAPI checks what the HTTP API needs on top of Load.
func (c *Config) ValidateAPI() error {
	if c.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if c.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if c.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if c.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if c.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}
	return nil
}
