package configs

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment.
type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
	RedisAddr   string

	SuperAdminUsername string
	SuperAdminEmail    string
	SuperAdminPassword string
}

// Load reads the environment, falling back to a local .env file when
// present. Missing optional values get development defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:               getenv("PORT", "8080"),
		DatabaseDSN:        os.Getenv("DATABASE_DSN"),
		JWTSecret:          getenv("JWT_SECRET", "dev"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		SuperAdminUsername: os.Getenv("SUPER_ADMIN_USERNAME"),
		SuperAdminEmail:    os.Getenv("SUPER_ADMIN_EMAIL"),
		SuperAdminPassword: os.Getenv("SUPER_ADMIN_PASSWORD"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
