package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Server captures process-wide configuration loaded once at startup. Values
// are immutable after FromEnv returns; nothing reads the environment later.
type Server struct {
	Addr string

	// Mongo settings. An empty URL switches the process to in-memory stores,
	// which is only appropriate for local development and tests.
	MongoURL string
	DBName   string

	JWT JWTConfig

	// Rego scan extraction collaborator. Optional; the endpoint returns an
	// error when unconfigured.
	ExtractorURL    string
	ExtractorAPIKey string
}

// JWTConfig holds token signing configuration. The signing key has no
// default: a process without one must not start.
type JWTConfig struct {
	SigningKey string
	Algorithm  string
	TTL        time.Duration
}

const (
	defaultAddr       = ":8080"
	defaultDBName     = "motorvault"
	defaultTTLMinutes = 10080 // 7 days
)

// FromEnv builds a Server config from environment variables so main stays
// lean. A .env file in the working directory is honored when present.
func FromEnv() (Server, error) {
	_ = godotenv.Load()

	signingKey := os.Getenv("JWT_SIGNING_KEY")
	if signingKey == "" {
		return Server{}, fmt.Errorf("JWT_SIGNING_KEY is required")
	}

	algorithm := getEnvOrDefault("JWT_ALGORITHM", "HS256")
	if algorithm != "HS256" {
		return Server{}, fmt.Errorf("unsupported JWT_ALGORITHM %q: only HS256 is supported", algorithm)
	}

	ttlMinutes := defaultTTLMinutes
	if raw := os.Getenv("JWT_TTL_MINUTES"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return Server{}, fmt.Errorf("invalid JWT_TTL_MINUTES %q", raw)
		}
		ttlMinutes = parsed
	}

	return Server{
		Addr:     getEnvOrDefault("MOTORVAULT_ADDR", defaultAddr),
		MongoURL: os.Getenv("MONGO_URL"),
		DBName:   getEnvOrDefault("DB_NAME", defaultDBName),
		JWT: JWTConfig{
			SigningKey: signingKey,
			Algorithm:  algorithm,
			TTL:        time.Duration(ttlMinutes) * time.Minute,
		},
		ExtractorURL:    os.Getenv("REGO_EXTRACTOR_URL"),
		ExtractorAPIKey: os.Getenv("REGO_EXTRACTOR_API_KEY"),
	}, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
