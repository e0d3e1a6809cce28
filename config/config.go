package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting the API reads from the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"sweetzone"`

	JWTSecret   string `env:"JWT_SECRET,required"`
	AdminAPIKey string `env:"ADMIN_API_KEY,required"`

	// DeliveryFee is a flat per-order charge in whole currency units.
	DeliveryFee int64 `env:"DELIVERY_FEE" envDefault:"100"`

	AuthAPIURL  string `env:"AUTH_API_URL,required"`
	AuthAPIKey  string `env:"AUTH_API_KEY"`
	GeocoderURL string `env:"GEOCODER_URL" envDefault:"https://nominatim.openstreetmap.org"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// DSN returns the Postgres connection string, preferring DATABASE_URL.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
