// Package config loads bowlink configuration from the environment and
// sets up logging.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values.
type Config struct {
	// SurrealDB connection
	SurrealDBURL       string
	SurrealDBNamespace string
	SurrealDBDatabase  string
	SurrealDBUser      string
	SurrealDBPass      string
	SurrealDBAuthLevel string

	// Linker tunables
	SimilarityThreshold float64
	MaxLinksPerItem     int
	MinSimilarity       float64
	ScanWorkers         int

	// Optional embedding similarity
	OllamaHost     string
	EmbedModel     string
	EmbedDimension int

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from BOWLINK_* environment variables,
// falling back to defaults.
func Load() Config {
	return Config{
		SurrealDBURL:       getEnv("SURREALDB_URL", "ws://localhost:8000/rpc"),
		SurrealDBNamespace: getEnv("SURREALDB_NAMESPACE", "bowlink"),
		SurrealDBDatabase:  getEnv("SURREALDB_DATABASE", "vocabulary"),
		SurrealDBUser:      getEnv("SURREALDB_USER", "root"),
		SurrealDBPass:      getEnv("SURREALDB_PASS", "root"),
		SurrealDBAuthLevel: getEnv("SURREALDB_AUTH_LEVEL", "root"),

		SimilarityThreshold: getEnvFloat("BOWLINK_SIMILARITY_THRESHOLD", 0.3),
		MaxLinksPerItem:     getEnvInt("BOWLINK_MAX_LINKS_PER_ITEM", 10),
		MinSimilarity:       getEnvFloat("BOWLINK_MIN_SIMILARITY", 0.3),
		ScanWorkers:         getEnvInt("BOWLINK_SCAN_WORKERS", 1),

		OllamaHost:     getEnv("OLLAMA_HOST", "http://localhost:11434"),
		EmbedModel:     getEnv("BOWLINK_EMBEDDING_MODEL", "all-minilm:l6-v2"),
		EmbedDimension: getEnvInt("BOWLINK_EMBEDDING_DIMENSION", 384),

		LogFile:  getEnv("BOWLINK_LOG_FILE", "/tmp/bowlink.log"),
		LogLevel: parseLogLevel(getEnv("BOWLINK_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
