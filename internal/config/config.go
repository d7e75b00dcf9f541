package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT JWTConfig `yaml:"jwt"`

	Reset ResetConfig `yaml:"reset"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	FirstAdminEmail    string `yaml:"-"`
	FirstAdminPassword string `yaml:"-"`
}

// JWTConfig передается в TokenManager при создании.
// Секрет и issuer/audience приходят из окружения (JWT_KEY и т.д.).
type JWTConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
	TTLHours int    `yaml:"ttl_hours"`
}

// TTL возвращает срок жизни access-токена
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// ResetConfig - настройки жизненного цикла кодов сброса пароля
type ResetConfig struct {
	CodeTTLMinutes       int `yaml:"code_ttl_minutes"`
	SweepIntervalSeconds int `yaml:"sweep_interval_seconds"`
}

// CodeTTL возвращает порог устаревания кода сброса
func (c ResetConfig) CodeTTL() time.Duration {
	return time.Duration(c.CodeTTLMinutes) * time.Minute
}

// SweepInterval возвращает период фоновой чистки
func (c ResetConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// Load читает config.yaml и накладывает переменные окружения поверх.
// .env подхватывается автоматически, если есть.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", configPath, err)
		}
	}

	applyEnv(cfg)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT secret is not configured (set JWT_KEY or jwt.secret)")
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 4000
	cfg.Server.Env = "development"
	cfg.JWT.Issuer = "inspirahub"
	cfg.JWT.Audience = "inspirahub-api"
	cfg.JWT.TTLHours = 7 * 24
	cfg.Reset.CodeTTLMinutes = 5
	cfg.Reset.SweepIntervalSeconds = 60
	cfg.Email.FromEmail = "noreply@inspirahub.net"
	cfg.Email.FromName = "InspiraHub"
	cfg.Email.SMTPPort = 587
	return cfg
}

// applyEnv накладывает переменные окружения поверх файла.
// Имена переменных совпадают с тем, что ожидает деплой (JWT_KEY и т.д.).
func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("JWT_KEY"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("JWT_ISSUER"); v != "" {
		cfg.JWT.Issuer = v
	}
	if v := os.Getenv("JWT_AUDIENCE"); v != "" {
		cfg.JWT.Audience = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Email.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Email.SMTPPort = port
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.Email.SMTPUser = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Email.SMTPPassword = v
	}
	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")
}
