package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the application reads from the environment. It is
// loaded once at startup via Load.
type Config struct {
	ListenAddr  string
	DatabaseURL string

	SiteName string
	SiteURL  string

	UploadDir      string
	MaxUploadBytes int64

	SessionLifetime time.Duration
	CookieSecure    bool
	RedisAddr       string

	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		SiteName:        getEnv("SITE_NAME", "PayLinks"),
		SiteURL:         getEnv("SITE_URL", "http://localhost:8080"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:  getEnvInt64("MAX_UPLOAD_BYTES", 5*1024*1024),
		SessionLifetime: time.Duration(getEnvInt64("SESSION_LIFETIME_MINUTES", 30)) * time.Minute,
		CookieSecure:    getEnv("COOKIE_SECURE", "false") == "true",
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		AdminUsername:   getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:      getEnv("ADMIN_EMAIL", "admin@localhost"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid value for %s (%q), using default %d", key, v, fallback)
		return fallback
	}
	return n
}
