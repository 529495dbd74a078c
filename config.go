package main

import (
	"fmt"
	"os"
)

// Config holds all environment variables for the service.
type Config struct {
	Port      string // HTTP port (default: 8080)
	MongoURL  string // MongoDB connection string
	DBName    string // Database name (default: pizza-form)
	JWTSecret string // Secret for signing and verifying tokens
}

// LoadConfig loads environment variables into a Config struct and
// validates the required fields.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:      os.Getenv("PORT"),
		MongoURL:  os.Getenv("MONGO_URL"),
		DBName:    os.Getenv("DB_NAME"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoURL == "" {
		cfg.MongoURL = "mongodb://localhost:27017"
	}
	if cfg.DBName == "" {
		cfg.DBName = "pizza-form"
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
