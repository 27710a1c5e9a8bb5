package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/clientes/internal/model"
)

const connectionTimeout = 3 * time.Second

const redisContainerName = "redis-test-clientes"

var redisClient *redis.Client

func TestMain(m *testing.M) {
	logger := logrus.New()

	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		logger.Fatalf("failed to create pool - %v", err)
	}

	if err := dockerPool.Client.Ping(); err != nil {
		logger.Fatalf("failed to connect to docker - %v", err)
	}

	rds, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Name:       redisContainerName,
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		logger.Fatalf("failed to start redis - %v", err)
	}

	redisClient = redis.NewClient(&redis.Options{Addr: rds.GetHostPort("6379/tcp")})
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()
		return redisClient.Ping(ctx).Err()
	})
	if err != nil {
		logger.Fatalf("failed to establish connection to redis - %v", err)
	}

	code := m.Run()

	_ = redisClient.Close()

	if err := dockerPool.Purge(rds); err != nil {
		logger.Fatalf("failed to purge redis - %v", err)
	}

	os.Exit(code)
}

func TestRedisClienteCache(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clienteCache := NewRedisClienteCache(redisClient, time.Minute)

	c := &model.Cliente{
		ID:          "ecc770d9-4576-4f72-affa-8b1454246692",
		RUC:         "20123456789",
		RazonSocial: "Comercial Andina SAC",
		Telefono:    "01-4567890",
		Correo:      "ventas@andina.pe",
		Direccion:   "Av. Arequipa 123, Lima",
	}

	t.Log("missing cliente is reported as nil without error")
	{
		cached, err := clienteCache.FindByRUC(ctx, c.RUC)
		require.NoError(t, err, "cache miss must not raise error")
		require.Nil(t, cached, "nothing was cached yet")
	}

	t.Log("cache cliente and read it back")
	{
		err := clienteCache.Cache(ctx, c)
		require.NoError(t, err, "failed to cache cliente")

		cached, err := clienteCache.FindByRUC(ctx, c.RUC)
		require.NoError(t, err, "failed to read cached cliente")
		require.Equal(t, c, cached, "cached cliente differs from original")

		ttl, err := redisClient.TTL(ctx, "cliente:"+c.RUC).Result()
		require.NoError(t, err, "failed to read ttl")
		require.Greater(t, ttl, time.Duration(0), "cached entry must expire")
	}

	t.Log("evict cliente together with unknown ruc")
	{
		err := clienteCache.EvictByRUC(ctx, c.RUC, "20000000000")
		require.NoError(t, err, "failed to evict cliente")

		cached, err := clienteCache.FindByRUC(ctx, c.RUC)
		require.NoError(t, err, "failed to read cache after eviction")
		require.Nil(t, cached, "cliente was evicted, but still cached")
	}
}

func TestNopClienteCache(t *testing.T) {
	ctx := context.Background()
	clienteCache := NewNopClienteCache()

	c := &model.Cliente{RUC: "20123456789", RazonSocial: "Comercial Andina SAC"}
	require.NoError(t, clienteCache.Cache(ctx, c))

	cached, err := clienteCache.FindByRUC(ctx, c.RUC)
	require.NoError(t, err)
	require.Nil(t, cached, "nop cache must never return entries")
	require.NoError(t, clienteCache.EvictByRUC(ctx, c.RUC))
}

type countingObserver struct {
	hits, misses int
}

func (o *countingObserver) Hit()  { o.hits++ }
func (o *countingObserver) Miss() { o.misses++ }

func TestObservedClienteCache(t *testing.T) {
	ctx := context.Background()
	observer := &countingObserver{}
	clienteCache := NewObservedClienteCache(NewRedisClienteCache(redisClient, time.Minute), observer)

	c := &model.Cliente{RUC: "20555555555", RazonSocial: "Observada SAC"}

	_, err := clienteCache.FindByRUC(ctx, c.RUC)
	require.NoError(t, err)
	require.NoError(t, clienteCache.Cache(ctx, c))
	_, err = clienteCache.FindByRUC(ctx, c.RUC)
	require.NoError(t, err)

	require.Equal(t, 1, observer.hits, "second lookup must hit")
	require.Equal(t, 1, observer.misses, "first lookup must miss")
}
