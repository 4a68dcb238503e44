package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	OpenAIKey    string
	Port         string
	Env          string
	AllowOrigins string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		Port:         os.Getenv("PORT"),
		Env:          os.Getenv("ENV"),
		AllowOrigins: os.Getenv("ALLOW_ORIGINS"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8001"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.AllowOrigins == "" {
		// Local dev frontends served by Vite / the static site
		cfg.AllowOrigins = "http://localhost:8080,http://localhost:3000,http://127.0.0.1:8080"
	}

	return cfg
}
