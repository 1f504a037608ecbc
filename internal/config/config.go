package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the server configuration, loaded from the environment
// with an optional .env file
type Config struct {
	App AppConfig
}

// AppConfig holds the HTTP server and model settings
type AppConfig struct {
	Port        string
	Environment string
	LogFilePath string
	ModelPath   string
	WatchModel  bool
}

// Load reads configuration from .env and the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:        getEnv("APP_PORT", "3000"),
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "roofmesh.log"),
			ModelPath:   getEnv("MODEL_PATH", ""),
			WatchModel:  getEnvAsBool("MODEL_WATCH", false),
		},
	}
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
