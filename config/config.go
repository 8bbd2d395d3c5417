package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// devWebhookSecret is the known development default. It is never applied
// when ENV=production: a production deployment without an explicit
// webhook secret refuses to start rather than silently verifying against
// a published value.
const devWebhookSecret = "mywebhooksecret"

// Config holds all configuration for the application
type Config struct {
	RazorpayKeyID     string
	RazorpayKeySecret string
	WebhookSecret     string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string

	AdminEmail    string
	AdminPassword string
	JWTSecret     string

	DataDir string
	Port    string
	Env     string
}

// LoadConfig loads configuration from environment variables. A .env file
// is honored when present and silently skipped otherwise.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		WebhookSecret:     os.Getenv("RAZORPAY_WEBHOOK_SECRET"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		DataDir:           os.Getenv("DATA_DIR"),
		Port:              os.Getenv("PORT"),
		Env:               os.Getenv("ENV"),
	}

	if config.Port == "" {
		config.Port = "8080"
	}
	if config.DataDir == "" {
		config.DataDir = "data"
	}
	if config.WebhookSecret == "" {
		if config.IsProduction() {
			return nil, fmt.Errorf("RAZORPAY_WEBHOOK_SECRET must be set in production")
		}
		config.WebhookSecret = devWebhookSecret
	}

	return config, nil
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GatewayConfigured reports whether order creation is possible.
func (c *Config) GatewayConfigured() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

// DatabaseConfigured reports whether durable-store credentials exist.
func (c *Config) DatabaseConfigured() bool {
	return c.DBHost != "" && c.DBName != ""
}
