package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	DatabaseURL          string
	JWTSecret            string
	JWTIssuer            string
	AccessTTLSeconds     int64
	ChatAPIKey           string
	ChatAPIURL           string
	MetricsDiskPath      string
	MetricsSampleSeconds int
	MetricsHistoryLimit  int
	CorsOrigins          []string
	SeedDemoData         bool
}

func Load() Config {
	cfg := Config{
		DatabaseURL:          mustEnv("DATABASE_URL"),
		JWTSecret:            mustEnv("JWT_SECRET"),
		JWTIssuer:            envOr("JWT_ISSUER", "uni-verse"),
		AccessTTLSeconds:     int64(envOrInt("ACCESS_TTL_SECONDS", 14400)),
		ChatAPIKey:           envOr("CHATBASE_API_KEY", ""),
		ChatAPIURL:           envOr("CHATBASE_API_URL", "https://www.chatbase.co/api/v1/chat"),
		MetricsDiskPath:      envOr("METRICS_DISK_PATH", "/"),
		MetricsSampleSeconds: envOrInt("METRICS_SAMPLE_INTERVAL", 5),
		MetricsHistoryLimit:  envOrInt("METRICS_HISTORY_LIMIT", 500),
		CorsOrigins:          parseCSV(envOr("CORS_ORIGINS", "")),
		SeedDemoData:         envOrBool("SEED_DEMO_DATA", true),
	}
	// The sampler builds a ticker from this; zero or negative would panic.
	if cfg.MetricsSampleSeconds < 1 {
		cfg.MetricsSampleSeconds = 1
	}
	return cfg
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
