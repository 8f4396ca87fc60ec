package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries process configuration resolved from the environment.
type Config struct {
	Env           string // development, production
	Addr          string // listen address, default :8080
	DBPath        string // sqlite file path
	StaticDir     string // static assets root (images live under <StaticDir>/images)
	AdminEmail    string // seeded admin login
	AdminPassword string
	CSRFKeyHex    string // 32-byte hex-encoded CSRF secret
	GeminiAPIKey  string // advice generation; empty disables the real client
}

// Load reads configuration from the environment, with an optional .env file
// for development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:           getEnv("FITSTUDIO_ENV", "development"),
		Addr:          getEnv("FITSTUDIO_ADDR", ":8080"),
		DBPath:        getEnv("FITSTUDIO_DB_PATH", "fitstudio.db"),
		StaticDir:     getEnv("FITSTUDIO_STATIC_DIR", "static"),
		AdminEmail:    getEnv("FITSTUDIO_ADMIN_EMAIL", "admin@fitstudio.local"),
		AdminPassword: getEnv("FITSTUDIO_ADMIN_PASSWORD", "change me soon"),
		CSRFKeyHex:    os.Getenv("FITSTUDIO_CSRF_KEY"),
		GeminiAPIKey:  os.Getenv("FITSTUDIO_GEMINI_KEY"),
	}
}

// IsProduction reports whether the process runs with production hardening.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
