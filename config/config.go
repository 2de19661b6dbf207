package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Backend BackendConfig
	Server  ServerConfig
	Redis   RedisConfig
}

type BackendConfig struct {
	// APIURL is the base URL of the backend transaction API, including any
	// path prefix (e.g. http://localhost:8000/api/v1). Read once at startup.
	APIURL string
}

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	// URL enables the relay rate limiter when set. Empty disables it.
	URL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		Backend: BackendConfig{
			APIURL: os.Getenv("BACKEND_API_URL"),
		},
		Server: ServerConfig{
			Port: os.Getenv("SERVER_PORT"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
	}

	if cfg.Backend.APIURL == "" {
		cfg.Backend.APIURL = "http://localhost:8000/api/v1"
		log.Printf("Warning: BACKEND_API_URL not set, using default: %s", cfg.Backend.APIURL)
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "3000"
	}

	return cfg
}
