package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Email     EmailConfig
	Scheduler SchedulerConfig
	Recommend RecommendConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Path string
}

type JWTConfig struct {
	Secret string
}

// EmailConfig holds SMTP settings for outbound notifications.
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

type SchedulerConfig struct {
	// IANA time zone the sweeps evaluate reminder times in.
	TimeZone string
}

type RecommendConfig struct {
	// Path of the persisted regression model artifact.
	ModelPath string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment. A .env file is
// honored when present but not required.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./senior_companion.db"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET_KEY", ""),
		},
		Email: EmailConfig{
			SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:     getEnv("SMTP_PORT", "587"),
			SMTPUsername: getEnv("SMTP_USERNAME", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			FromEmail:    getEnv("FROM_EMAIL", "reminders@senior-companion.com"),
			FromName:     getEnv("FROM_NAME", "The Senior Companion Team"),
		},
		Scheduler: SchedulerConfig{
			TimeZone: getEnv("APP_TIME_ZONE", "Asia/Kolkata"),
		},
		Recommend: RecommendConfig{
			ModelPath: getEnv("MODEL_PATH", "./ml_models/rf_weights.json"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if _, err := time.LoadLocation(cfg.Scheduler.TimeZone); err != nil {
		return nil, fmt.Errorf("invalid APP_TIME_ZONE %q: %w", cfg.Scheduler.TimeZone, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
