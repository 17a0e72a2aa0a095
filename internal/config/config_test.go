package config

import (
	"os"
	"testing"
)

func TestLoad_DefaultValues(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected SERVER_PORT default '8080', got '%s'", cfg.Server.Port)
	}

	if cfg.Database.Path != "./senior_companion.db" {
		t.Errorf("Expected DB_PATH default './senior_companion.db', got '%s'", cfg.Database.Path)
	}

	if cfg.Email.SMTPPort != "587" {
		t.Errorf("Expected SMTP_PORT default '587', got '%s'", cfg.Email.SMTPPort)
	}

	if cfg.Email.FromEmail != "reminders@senior-companion.com" {
		t.Errorf("Expected FROM_EMAIL default 'reminders@senior-companion.com', got '%s'", cfg.Email.FromEmail)
	}

	if cfg.Scheduler.TimeZone != "Asia/Kolkata" {
		t.Errorf("Expected APP_TIME_ZONE default 'Asia/Kolkata', got '%s'", cfg.Scheduler.TimeZone)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Expected LOG_LEVEL default 'info', got '%s'", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DB_PATH", "/tmp/app.db")
	os.Setenv("APP_TIME_ZONE", "UTC")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected SERVER_PORT '9090', got '%s'", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/app.db" {
		t.Errorf("Expected DB_PATH '/tmp/app.db', got '%s'", cfg.Database.Path)
	}
	if cfg.Scheduler.TimeZone != "UTC" {
		t.Errorf("Expected APP_TIME_ZONE 'UTC', got '%s'", cfg.Scheduler.TimeZone)
	}
}

func TestLoad_InvalidTimeZone(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_TIME_ZONE", "Not/AZone")
	defer os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for invalid time zone, got nil")
	}
}
