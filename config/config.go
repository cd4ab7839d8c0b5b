package config

import (
	"errors"
	"os"
	"time"

	"jotbox/utils"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs, loaded once at startup and
// passed by reference into each component's constructor.
type Config struct {
	Port        string
	CORSOrigins []string

	Mongo DatabaseConfig

	JWTSecret string
	JWTExpiry time.Duration
}

type DatabaseConfig struct {
	URI             string
	DatabaseName    string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	RetryWrites     bool
}

// Load reads the environment (optionally seeded from a .env file) and
// validates the values that have no safe default.
func Load() (*Config, error) {
	// A missing .env file is fine; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{
		Port:        utils.GetEnvAsString("PORT", "8080"),
		CORSOrigins: utils.GetEnvAsSlice("CORS_ORIGINS", []string{"http://localhost:5173"}),
		Mongo:       loadDatabaseConfig(),
		JWTSecret:   os.Getenv("JWT_SECRET_KEY"),
		JWTExpiry:   utils.GetEnvAsDuration("JWT_EXPIRATION_TIME", 24*time.Hour),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET_KEY is not set")
	}
	if cfg.JWTExpiry <= 0 {
		return nil, errors.New("JWT_EXPIRATION_TIME must be positive")
	}

	return cfg, nil
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:             utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:    utils.GetEnvAsString("MONGO_DB", "jotbox"),
		MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		RetryWrites:     true,
	}
}
