package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"careerguide/pkg/cache"
	"careerguide/pkg/cache/redis"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForListeningPort("6379"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return fmt.Sprintf("%s:%d", host, port.Int())
}

func TestCache_GetSet(t *testing.T) {
	addr := startRedis(t)
	ctx := context.Background()

	c, err := redis.New(ctx, redis.Options{Addr: addr, Prefix: "test:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	_, found, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	v, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte("v"), v)

	type payload struct{ Steps int }
	require.NoError(t, cache.SetJSON(ctx, c, "json", payload{Steps: 4}, time.Minute))
	var out payload
	found, err = cache.GetJSON(ctx, c, "json", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 4, out.Steps)
}

func TestCache_Expires(t *testing.T) {
	addr := startRedis(t)
	ctx := context.Background()

	c, err := redis.New(ctx, redis.Options{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Set(ctx, "short", []byte("v"), 50*time.Millisecond))
	require.Eventually(t, func() bool {
		_, found, err := c.Get(ctx, "short")

		return err == nil && !found
	}, 3*time.Second, 50*time.Millisecond)
}

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := redis.New(ctx, redis.Options{Addr: "127.0.0.1:1"})
	require.Error(t, err)
}
