package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	APIBaseURL     string
	StorageBaseURL string
	TokenFile      string
}

var (
	cfg  *Config
	once sync.Once
)

// LoadConfig memuat konfigurasi dari file .env (jika ada) dan environment variables.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found. Relying on environment variables.")
		}
		cfg = &Config{
			AppEnv:         os.Getenv("APP_ENV"),
			APIBaseURL:     envOr("UKS_API_BASE_URL", "http://localhost:8000/api"),
			StorageBaseURL: envOr("UKS_STORAGE_BASE_URL", "http://localhost:8000/storage"),
			TokenFile:      envOr("UKS_TOKEN_FILE", ".uks_token"),
		}
	})
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
