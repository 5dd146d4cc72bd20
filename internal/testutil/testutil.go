package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	redismodule "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

func SetupRedisContainer(ctx context.Context, t *testing.T) (*redis.Client, func()) {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("failed to start redis container: %v", r)
		}
	}()

	container, err := redismodule.Run(ctx, "redis:8-alpine")
	if err != nil {
		t.Skipf("failed to start redis container: %v", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Skipf("failed to get redis endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: endpoint,
	})

	cleanup := func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close redis client: %v", err)
		}

		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	}

	return client, cleanup
}

// SetupPostgresContainer starts Postgres and returns its connection string.
func SetupPostgresContainer(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("failed to start postgres container: %v", r)
		}
	}()

	container, err := tcpostgres.Run(ctx, "postgres:17-alpine",
		tcpostgres.WithDatabase("autoschedule"),
		tcpostgres.WithUsername("autoschedule"),
		tcpostgres.WithPassword("autoschedule"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Skipf("failed to get postgres connection string: %v", err)
	}

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	}

	return dsn, cleanup
}
