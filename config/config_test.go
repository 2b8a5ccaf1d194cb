package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		HTTPServer: HTTPServerConfig{Port: 8080},
		Redis:      RedisConfig{Host: "localhost", Port: 6379},
		Kafka:      KafkaConfig{Topic: "trend.analysis.completed"},
		OpenRouter: OpenRouterConfig{Temperature: 0.1},
		Analysis:   AnalysisConfig{CacheTTL: 1800 * time.Second, CacheBackend: CacheBackendMemory},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.HTTPServer.Port = 0 }, wantErr: "http_server.port"},
		{name: "short jwt secret", mutate: func(c *Config) { c.JWT.SecretKey = "short" }, wantErr: "jwt.secret_key"},
		{name: "unknown cache backend", mutate: func(c *Config) { c.Analysis.CacheBackend = "disk" }, wantErr: "analysis.cache_backend"},
		{name: "redis backend without host", mutate: func(c *Config) {
			c.Analysis.CacheBackend = CacheBackendRedis
			c.Redis.Host = ""
		}, wantErr: "redis.host"},
		{name: "zero ttl", mutate: func(c *Config) { c.Analysis.CacheTTL = 0 }, wantErr: "analysis.cache_ttl"},
		{name: "temperature out of range", mutate: func(c *Config) { c.OpenRouter.Temperature = 3 }, wantErr: "openrouter.temperature"},
		{name: "brokers without topic", mutate: func(c *Config) {
			c.Kafka.Brokers = []string{"localhost:9092"}
			c.Kafka.Topic = ""
		}, wantErr: "kafka.topic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() error mismatch: got %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAPI(t *testing.T) {
	cfg := validConfig()
	cfg.Postgres = PostgresConfig{Host: "localhost", Port: 5432, User: "postgres", DBName: "postgres"}

	if err := cfg.ValidateAPI(); err == nil || !strings.Contains(err.Error(), "jwt.secret_key") {
		t.Errorf("ValidateAPI() error mismatch: got %v, want jwt.secret_key error", err)
	}

	cfg.JWT.SecretKey = strings.Repeat("s", 32)
	if err := cfg.ValidateAPI(); err != nil {
		t.Errorf("ValidateAPI() error = %v, want nil", err)
	}
}
