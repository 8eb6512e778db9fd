package config

import (
	"os"
	"strconv"
	"time"
)

// Config содержит настройки сервера. Значения читаются из переменных
// окружения с разумными значениями по умолчанию для локальной разработки
type Config struct {
	Addr              string
	DatabasePath      string
	JWTSecret         string
	OpenWeatherAPIKey string
	AccessTokenTTL    time.Duration
	LogLevel          string
}

func Load() Config {
	return Config{
		Addr:              getenv("RIFFLE_ADDR", ":8080"),
		DatabasePath:      getenv("RIFFLE_DB_PATH", "./riffle.db"),
		JWTSecret:         getenv("RIFFLE_JWT_SECRET", "riffle-dev-secret"),
		OpenWeatherAPIKey: getenv("OPENWEATHER_API_KEY", ""),
		AccessTokenTTL:    time.Duration(getenvInt("RIFFLE_ACCESS_TTL_SECONDS", 86400)) * time.Second,
		LogLevel:          getenv("RIFFLE_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
