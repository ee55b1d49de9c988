package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseDSN    string
	JWTSecret      string
	BaseURL        string
	AllowedOrigins string
	GinMode        string
}

// C holds the loaded configuration for the running process.
var C Config

// CORSOrigins returns the allowed CORS origins: the local dev frontend plus
// any comma-separated entries from ALLOWED_ORIGINS.
func (c Config) CORSOrigins() []string {
	origins := []string{"http://localhost:3000"}
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	C = Config{
		Port:           getenv("PORT", "8083"),
		DatabaseDSN:    getenv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=streetwise port=5432 sslmode=disable"),
		JWTSecret:      getenv("JWT_SECRET", "streetwise-dev-secret"),
		BaseURL:        getenv("BASE_URL", "http://localhost:8083"),
		AllowedOrigins: getenv("ALLOWED_ORIGINS", ""),
		GinMode:        getenv("GIN_MODE", ""),
	}
	log.Printf("[config] PORT=%s", C.Port)
	log.Printf("[config] BASE_URL=%s", C.BaseURL)
	return C
}
