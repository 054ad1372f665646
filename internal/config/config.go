package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Skotchmaster/shopping_cart/internal/hash"
)

const (
	DefaultServiceName = "shopping-cart"
	DefaultPort        = 9024
	DefaultDatabaseURL = "shopping_cart.db"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	DatabaseURL string

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	KafkaBrokers []string
}

// LoadConfig reads .env if present and then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env file not found: %v. Using system environment variables", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		ServiceName: EnvDefault("SERVICE_NAME", DefaultServiceName),
		ServerPort:  EnvIntDefault("SERVER_PORT", DefaultPort),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),

		DatabaseURL: EnvDefault("DATABASE_URL", DefaultDatabaseURL),

		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.AdminUsername == "" {
		return errors.New("missing required env ADMIN_USERNAME")
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return errors.New("missing required env ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}
	if c.AdminPasswordHash != "" && !hash.IsHash(c.AdminPasswordHash) {
		return errors.New("ADMIN_PASSWORD_HASH is not a bcrypt hash")
	}
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT out of range: %d", c.ServerPort)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.ServerPort)
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
