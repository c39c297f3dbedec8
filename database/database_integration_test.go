//go:build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"userregistry/internal/models"
	"userregistry/internal/repository"
)

func TestPostgresRegistrationStore(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("userregistry_test"),
		postgres.WithUsername("userregistry"),
		postgres.WithPassword("userregistry_test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db))

	repo := repository.NewRegistrationRepository(db)

	req := models.SampleRequest()
	first, err := req.ToRegistration(nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)

	req.Email = "ASHA.VERMA@example.com"
	second, err := req.ToRegistration(nil)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, second), repository.ErrDuplicateEmail)

	exists, err := repo.EmailExists(ctx, "Asha.Verma@Example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].PredictedAge)
	assert.Equal(t, "1995-04-12", list[0].DOB.Format("2006-01-02"))
}
