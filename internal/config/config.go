package config

import "os"

type Config struct {
	// Port is the HTTP listen port (default 3000).
	Port string

	// DBPath is the SQLite database file (default ./inkwell.db).
	DBPath string

	// OtelEndpoint is the OTLP gRPC collector address.
	OtelEndpoint string
}

func Load() Config {
	return Config{
		Port:         getEnv("PORT", "3000"),
		DBPath:       getEnv("DB_PATH", "./inkwell.db"),
		OtelEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4317"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
