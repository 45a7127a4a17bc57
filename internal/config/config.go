package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port        int
	Env         string
	LogLevel    string
	StoreDriver string
	SQLiteDSN   string

	KafkaBrokers []string
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Notice: .env file not loaded: %v. Using system environment variables", err)
	}
	return Load()
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:         EnvIntDefault("PORT", 3000),
		Env:          EnvDefault("NODE_ENV", EnvDevelopment),
		LogLevel:     EnvDefault("LOG_LEVEL", "info"),
		StoreDriver:  strings.ToLower(EnvDefault("STORE_DRIVER", StoreMemory)),
		SQLiteDSN:    EnvDefault("SQLITE_DSN", "file::memory:"),
		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}
	switch cfg.StoreDriver {
	case StoreMemory, StoreSQLite:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, EnvProduction)
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
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
