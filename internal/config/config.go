package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	ListenAddr  string

	// Simulated external-call latencies. Zero disables the delay.
	RegistryLatency   time.Duration
	ClassifierLatency time.Duration
}

// Load reads .env if present and builds the config from environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := &Config{
		DatabaseURL:       getEnv("DATABASE_URL", "resolvehub.db"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTTTL:            getDuration("JWT_TTL", 24*time.Hour),
		ListenAddr:        getEnv("LISTEN_ADDR", ":8080"),
		RegistryLatency:   getDuration("REGISTRY_LATENCY", 1200*time.Millisecond),
		ClassifierLatency: getDuration("CLASSIFIER_LATENCY", 800*time.Millisecond),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}
