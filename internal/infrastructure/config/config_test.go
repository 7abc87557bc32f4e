package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "localhost:4317", cfg.OTLP.Endpoint)
	assert.Equal(t, "storefront-api", cfg.OTLP.ServiceName)
	assert.False(t, cfg.OTLP.ExportEnabled)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "en-GB", cfg.Storefront.Locale.String())
	assert.Equal(t, 3*time.Second, cfg.Storefront.NotificationTTL)
	assert.Equal(t, 4, cfg.Storefront.FeaturedCount)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OTEL_EXPORT_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STOREFRONT_LOCALE", "de-DE")
	t.Setenv("STOREFRONT_NOTIFICATION_TTL", "500ms")
	t.Setenv("STOREFRONT_FEATURED_COUNT", "6")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.OTLP.ExportEnabled)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "de-DE", cfg.Storefront.Locale.String())
	assert.Equal(t, 500*time.Millisecond, cfg.Storefront.NotificationTTL)
	assert.Equal(t, 6, cfg.Storefront.FeaturedCount)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"STOREFRONT_NOTIFICATION_TTL": "soon",
		"STOREFRONT_FEATURED_COUNT":   "four",
		"STOREFRONT_LOCALE":           "not a locale!",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
