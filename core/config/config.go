package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// MailConfig configures the outbound email API used by the notification
// worker.
type MailConfig struct {
	APIURL      string
	APIKey      string
	From        string
	OfficeEmail string
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Mail     MailConfig
	LogLevel string
}

var cfg *Config

// Load reads .env (if present) and environment variables into Config.
func Load() (*Config, error) {
	// .env is optional; env vars win in deployed environments.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "7070")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "community")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("MAIL_API_URL", "https://api.resend.com/emails")
	v.SetDefault("MAIL_FROM", "Community Events <events@example.org>")

	c := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_SECRET"),
			ExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		},
		Mail: MailConfig{
			APIURL:      v.GetString("MAIL_API_URL"),
			APIKey:      v.GetString("MAIL_API_KEY"),
			From:        v.GetString("MAIL_FROM"),
			OfficeEmail: v.GetString("MAIL_OFFICE_EMAIL"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	if c.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg = c
	return c, nil
}

// Get returns the loaded configuration. Load must have been called.
func Get() *Config {
	return cfg
}

// SetForTesting replaces the global config in tests.
func SetForTesting(c *Config) {
	cfg = c
}
