//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clearview/internal/platform/config"
	"clearview/internal/platform/postgres"
	"clearview/pkg/testutil/containers"
)

func TestOpenAppliesPoolSettings(t *testing.T) {
	pg := containers.NewPostgresContainer(t)

	db, err := postgres.Open(context.Background(), config.PostgresConfig{
		DSN:             pg.DSN,
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Equal(t, 4, db.Stats().MaxOpenConnections)

	var one int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
}
