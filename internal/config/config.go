package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// PayrollConfig holds the operating calendar and overtime settings.
type PayrollConfig struct {
	// Timezone the attendance calendar is read in.
	Timezone string
	// OvertimePolicy is "stepped" (block grants) or "exact".
	OvertimePolicy string
	// RecomputeWindowDays is how far back the scheduled hour-recompute
	// pass reaches.
	RecomputeWindowDays int
	// RecomputeIntervalHours is how often that pass runs.
	RecomputeIntervalHours int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	recomputeWindow, err := strconv.Atoi(getEnv("PAYROLL_RECOMPUTE_WINDOW_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_RECOMPUTE_WINDOW_DAYS: %w", err)
	}
	recomputeInterval, err := strconv.Atoi(getEnv("PAYROLL_RECOMPUTE_INTERVAL_HOURS", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_RECOMPUTE_INTERVAL_HOURS: %w", err)
	}

	config.Payroll = PayrollConfig{
		Timezone:               getEnv("PAYROLL_TIMEZONE", "Asia/Kolkata"),
		OvertimePolicy:         getEnv("PAYROLL_OVERTIME_POLICY", "stepped"),
		RecomputeWindowDays:    recomputeWindow,
		RecomputeIntervalHours: recomputeInterval,
	}

	return config, nil
}

// DSN builds the PostgreSQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
