package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "AGIFY_TIMEOUT", "REDIS_URL", "REDIS_AGE_TTL", "CORS_ORIGINS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, DefaultAgifyURL, cfg.AgifyBaseURL)
	assert.Equal(t, 5*time.Second, cfg.AgifyTimeout)
	assert.Equal(t, 24*time.Hour, cfg.RedisAgeTTL)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("AGIFY_BASE_URL", "http://agify.local")
	t.Setenv("AGIFY_TIMEOUT", "750ms")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("REDIS_AGE_TTL", "1h")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "http://agify.local", cfg.AgifyBaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.AgifyTimeout)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, time.Hour, cfg.RedisAgeTTL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
}

func TestDSN(t *testing.T) {
	cfg := Config{
		DBHost: "db", DBPort: "5433", DBUser: "app", DBPassword: "secret",
		DBName: "registry", DBSSLMode: "disable",
	}
	assert.Equal(t,
		"host=db user=app password=secret dbname=registry port=5433 sslmode=disable application_name=userregistry TimeZone=UTC",
		cfg.DSN())

	cfg.DatabaseURL = "postgres://app:secret@db:5433/registry"
	assert.Equal(t, "postgres://app:secret@db:5433/registry", cfg.DSN())
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("USERREGISTRY_TEST_KEY=from-file\n"), 0o600))
	t.Setenv("USERREGISTRY_TEST_KEY", "")
	os.Unsetenv("USERREGISTRY_TEST_KEY")

	require.NoError(t, LoadEnvFiles(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("USERREGISTRY_TEST_KEY"))
}
