package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/moath17/taskdashbord-sub001/internal/pkg/validator"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Analytics AnalyticsConfig
}

type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
	SSLMode  string
}

// JWTConfig holds JWT verification configuration
type JWTConfig struct {
	Secret string `validate:"required"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Port                 int `validate:"required"`
	Env                  string
	LogLevel             string
	FrontendURL          string
	EnableSmartAnalytics bool
}

// AnalyticsConfig holds tunables for the reporting engine
type AnalyticsConfig struct {
	MaxRecommendedTasks int `validate:"required,min=1"`
}

func Load() (*Config, error) {
	// A missing .env file is fine outside local development.
	_ = godotenv.Load()

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
		Name:     getEnv("DB_NAME", "taskdashbord"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:                 appPort,
		Env:                  getEnv("APP_ENV", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		FrontendURL:          getEnv("FRONTEND_URL", "http://localhost:3000"),
		EnableSmartAnalytics: getEnvBool("ENABLE_SMART_ANALYTICS", true),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	maxTasks, err := strconv.Atoi(getEnv("MAX_RECOMMENDED_TASKS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_RECOMMENDED_TASKS: %w", err)
	}
	config.Analytics = AnalyticsConfig{
		MaxRecommendedTasks: maxTasks,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.Struct(c.Database); err != nil {
		return err
	}
	if err := validator.Struct(c.JWT); err != nil {
		return err
	}
	if err := validator.Struct(c.App); err != nil {
		return err
	}
	return validator.Struct(c.Analytics)
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
