package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

type Config struct {
	Server     ServerConfig
	OTLP       OTLPConfig
	Storefront StorefrontConfig
	LogLevel   slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

type ServerConfig struct {
	Port string `env:"SERVER_PORT" envDefault:"8080"`
	Host string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
}

type OTLPConfig struct {
	Endpoint      string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4317"`
	ServiceName   string `env:"OTEL_SERVICE_NAME" envDefault:"storefront-api"`
	Environment   string `env:"OTEL_ENVIRONMENT" envDefault:"development"`
	ExportEnabled bool   `env:"OTEL_EXPORT_ENABLED" envDefault:"false"`
}

type StorefrontConfig struct {
	Locale          language.Tag  `env:"STOREFRONT_LOCALE" envDefault:"en-GB"`
	NotificationTTL time.Duration `env:"STOREFRONT_NOTIFICATION_TTL" envDefault:"3s"`
	FeaturedCount   int           `env:"STOREFRONT_FEATURED_COUNT" envDefault:"4"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(language.Tag{}): parseLanguageTag,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func parseLanguageTag(v string) (any, error) {
	return language.Parse(v)
}
