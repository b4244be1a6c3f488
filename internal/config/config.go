package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppName            string
	Port               string
	DatabaseURL        string
	JWTSecret          string
	RedisAddress       string
	DeleteConfirmTTL   time.Duration
	GCSBucket          string
	GCSCredentialsJSON string
	LogLevel           string
	LogFormat          string
	CORSOrigins        string
}

const defaultJWTSecret = "your-super-secret-key-change-in-production"

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(NewViper())
}

// NewViper returns a viper instance bound to the environment with defaults set.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_NAME", "Warehouse API v1.0")
	v.SetDefault("PORT", "3000")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("DELETE_CONFIRM_TTL", "2m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ORIGINS", "*")
	return v
}

func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppName:            v.GetString("APP_NAME"),
		Port:               v.GetString("PORT"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		RedisAddress:       v.GetString("REDIS_ADDRESS"),
		DeleteConfirmTTL:   v.GetDuration("DELETE_CONFIRM_TTL"),
		GCSBucket:          v.GetString("GCS_BUCKET"),
		GCSCredentialsJSON: v.GetString("GCS_CREDENTIALS_JSON"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		CORSOrigins:        v.GetString("CORS_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			v.GetString("DB_HOST"),
			v.GetString("DB_USER"),
			v.GetString("DB_PASSWORD"),
			v.GetString("DB_NAME"),
			v.GetString("DB_PORT"),
		)
	}

	if cfg.DeleteConfirmTTL <= 0 {
		return nil, fmt.Errorf("DELETE_CONFIRM_TTL must be positive, got %q", v.GetString("DELETE_CONFIRM_TTL"))
	}
	return cfg, nil
}

// UsesDefaultSecret reports whether JWT_SECRET was left at its development default.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}
