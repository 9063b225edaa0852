package config

import (
	"os"
	"strconv"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port           string
	Environment    string
	ReadTimeout    int
	WriteTimeout   int
	DBPath         string
	DataDir        string
	MigrationsPath string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "3000"),
		Environment:    getEnv("ENV", "development"),
		ReadTimeout:    getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout:   getEnvAsInt("WRITE_TIMEOUT", 10),
		DBPath:         getEnv("DB_PATH", "data/db/plans.db"),
		DataDir:        getEnv("DATA_DIR", "data/renders"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations/001_create_plans.sql"),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
