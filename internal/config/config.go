package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Server
	Port   string `env:"APP_PORT" envDefault:"8080"`
	AppURL string `env:"APP_URL,required"`

	// Mongo
	MongoURI string `env:"MONGO_URI,required"`
	DBName   string `env:"DB_NAME,required"`

	// Redis
	CacheURL  string `env:"CACHE_URL,required"`
	CacheUser string `env:"CACHE_USER"`
	CachePwd  string `env:"CACHE_PWD"`

	// External APIs
	HuggingFaceKey  string `env:"HUGGINGFACE_API_KEY,required"`
	BrevoKey        string `env:"BREVO_API_KEY,required"`
	EmailSender     string `env:"EMAIL_SENDER,required"`
	EmailSenderName string `env:"EMAIL_SENDER_NAME" envDefault:"Being Resonated"`

	// Tracing
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
