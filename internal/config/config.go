package config

import (
	"fmt"
	"os"
)

// Config — настройки процесса, читаются из окружения один раз на старте
// и дальше не меняются.
type Config struct {
	PostgresConn      string
	JWTSecret         string
	ServerAddress     string
	AppEnv            string // production | development
	CORSAllowedOrigin string
}

// Production сообщает, включать ли Secure/SameSite=None атрибуты куки.
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

// Load читает конфигурацию из переменных окружения.
// POSTGRES_CONN и SECRET_ACCESS_JWT обязательны.
func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string

	cfg.PostgresConn = os.Getenv("POSTGRES_CONN")
	if cfg.PostgresConn == "" {
		missing = append(missing, "POSTGRES_CONN")
	}

	cfg.JWTSecret = os.Getenv("SECRET_ACCESS_JWT")
	if cfg.JWTSecret == "" {
		missing = append(missing, "SECRET_ACCESS_JWT")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	cfg.ServerAddress = getEnv("SERVER_ADDRESS", "0.0.0.0:8080")
	cfg.AppEnv = getEnv("APP_ENV", "development")
	cfg.CORSAllowedOrigin = getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:5173")

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
