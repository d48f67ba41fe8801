package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadClampsMetricsInterval(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("JWT_SECRET", "test-secret")

	t.Setenv("METRICS_SAMPLE_INTERVAL", "0")
	assert.Equal(t, 1, Load().MetricsSampleSeconds)

	t.Setenv("METRICS_SAMPLE_INTERVAL", "-3")
	assert.Equal(t, 1, Load().MetricsSampleSeconds)

	t.Setenv("METRICS_SAMPLE_INTERVAL", "15")
	assert.Equal(t, 15, Load().MetricsSampleSeconds)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("METRICS_SAMPLE_INTERVAL", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()
	assert.Equal(t, "uni-verse", cfg.JWTIssuer)
	assert.Equal(t, 5, cfg.MetricsSampleSeconds)
	assert.Nil(t, cfg.CorsOrigins)
	assert.True(t, cfg.SeedDemoData)
}
