package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	containerLifetime = 2 * time.Minute
	startupTimeout    = 2 * time.Minute
	gameTTL           = 10 * time.Minute
)

var redisContainer = dockertest.RunOptions{
	Repository: "redis",
	Tag:        "7-alpine",
	Cmd:        []string{"redis-server", "--save", "", "--appendonly", "no"},
}

// Suite is a Redis-backed environment for repository integration tests.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
	GameTTL time.Duration
}

// New starts a throwaway Redis container for t and flushes it.
// Tests are skipped in -short mode or when Docker is not reachable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	t.Cleanup(cancel)

	pool := dockerPool(t)
	resource := runRedis(t, pool)
	client := connect(ctx, t, pool, resource.GetHostPort("6379/tcp"))

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("flush redis: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Storage: client,
		GameTTL: gameTTL,
	}
}

func dockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker client: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker daemon unreachable: %v", err)
	}

	pool.MaxWait = startupTimeout

	return pool
}

// runRedis starts the container and registers its removal with t.
func runRedis(t *testing.T, pool *dockertest.Pool) *dockertest.Resource {
	t.Helper()

	options := redisContainer
	resource, err := pool.RunWithOptions(&options, func(host *docker.HostConfig) {
		host.AutoRemove = true
		host.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("start redis container: %v", err)
	}

	// hard kill if Cleanup never runs
	_ = resource.Expire(uint(containerLifetime.Seconds()))

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Errorf("remove redis container: %v", err)
		}
	})

	return resource
}

// connect waits until the server answers PING.
func connect(ctx context.Context, t *testing.T, pool *dockertest.Pool, addr string) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	if err := pool.Retry(func() error {
		return client.Ping(ctx).Err()
	}); err != nil {
		t.Fatalf("redis at %s not ready: %v", addr, err)
	}

	return client
}
