package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultPort         = "5000"
	DefaultAgifyURL     = "https://api.agify.io"
	DefaultAgifyTimeout = 5 * time.Second
	DefaultRedisAgeTTL  = 24 * time.Hour
)

type Config struct {
	Port        string `mapstructure:"port"`
	DatabaseURL string `mapstructure:"database_url"`
	DBHost      string `mapstructure:"db_host"`
	DBPort      string `mapstructure:"db_port"`
	DBUser      string `mapstructure:"db_user"`
	DBPassword  string `mapstructure:"db_password"`
	DBName      string `mapstructure:"db_name"`
	DBSSLMode   string `mapstructure:"db_sslmode"`

	AgifyBaseURL string        `mapstructure:"agify_base_url"`
	AgifyTimeout time.Duration `mapstructure:"agify_timeout"`

	RedisURL    string        `mapstructure:"redis_url"`
	RedisAgeTTL time.Duration `mapstructure:"redis_age_ttl"`

	LogLevel    string   `mapstructure:"log_level"`
	LogFormat   string   `mapstructure:"log_format"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

func setDefaultVariables(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("database_url", "")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "userregistry")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("agify_base_url", DefaultAgifyURL)
	v.SetDefault("agify_timeout", DefaultAgifyTimeout)
	v.SetDefault("redis_url", "")
	v.SetDefault("redis_age_ttl", DefaultRedisAgeTTL)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("cors_origins", []string{})
}

// LoadEnvFiles loads the given .env files into the process environment. Missing
// files are skipped; variables already set win.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// Load reads the configuration from the environment through v.
func Load(v *viper.Viper) (Config, error) {
	v.AutomaticEnv()
	setDefaultVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	if cfg.AgifyTimeout <= 0 {
		cfg.AgifyTimeout = DefaultAgifyTimeout
	}
	if cfg.RedisAgeTTL <= 0 {
		cfg.RedisAgeTTL = DefaultRedisAgeTTL
	}
	return cfg, nil
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN built from the
// DB_* variables.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s "+
			"application_name=userregistry TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}
