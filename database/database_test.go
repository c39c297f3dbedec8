package database

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"userregistry/internal/models"
)

func TestOpenAndMigrate(t *testing.T) {
	db, err := Open(sqlite.Open("file::memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.Registration{}))
	assert.True(t, db.Migrator().HasIndex(&models.Registration{}, "Email"))
	assert.True(t, db.Config.TranslateError)
	assert.True(t, db.Config.SkipDefaultTransaction)

	// running twice is harmless
	require.NoError(t, Migrate(db))
}

func TestMonitorDBConnectionsStops(t *testing.T) {
	db, err := Open(sqlite.Open("file::memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	ctx, cancel := context.WithCancel(context.Background())
	MonitorDBConnections(ctx, db, time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	cancel()
}

func TestGormErrorsLogAtWarn(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.InfoLevel)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: newGormLogger(l)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var n int
	require.Error(t, db.Raw("SELECT count(*) FROM no_such_table").Scan(&n).Error)

	require.NotZero(t, buf.Len())
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.SplitN(buf.Bytes(), []byte("\n"), 2)[0], &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "gorm", line["component"])
	assert.Contains(t, line["message"], "no_such_table")
}
