package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/clientes/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

// DefaultTimeToLive is used when cache is created with non-positive ttl
const DefaultTimeToLive = 10 * time.Minute

// ClienteCache keeps recently read clientes by RUC
type ClienteCache interface {
	FindByRUC(context.Context, string) (*model.Cliente, error)
	EvictByRUC(context.Context, ...string) error
	Cache(context.Context, *model.Cliente) error
}

type redisClienteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClienteCache builds redis backed ClienteCache
func NewRedisClienteCache(client *redis.Client, ttl time.Duration) ClienteCache {
	if ttl <= 0 {
		ttl = DefaultTimeToLive
	}
	return &redisClienteCache{client: client, ttl: ttl}
}

func (r *redisClienteCache) FindByRUC(ctx context.Context, ruc string) (*model.Cliente, error) {
	res, err := r.client.Get(ctx, r.key(ruc)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var c model.Cliente
	if err := msgpack.Unmarshal(res, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *redisClienteCache) EvictByRUC(ctx context.Context, rucs ...string) error {
	if len(rucs) == 0 {
		return nil
	}

	keys := make([]string, len(rucs))
	for i, ruc := range rucs {
		keys[i] = r.key(ruc)
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *redisClienteCache) Cache(ctx context.Context, c *model.Cliente) error {
	encoded, err := msgpack.Marshal(c)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(c.RUC), encoded, r.ttl).Err()
}

func (r *redisClienteCache) key(ruc string) string {
	return fmt.Sprintf("cliente:%s", ruc)
}

type nopClienteCache struct{}

// NewNopClienteCache builds ClienteCache which never holds anything
func NewNopClienteCache() ClienteCache {
	return nopClienteCache{}
}

func (nopClienteCache) FindByRUC(context.Context, string) (*model.Cliente, error) {
	return nil, nil
}

func (nopClienteCache) EvictByRUC(context.Context, ...string) error {
	return nil
}

func (nopClienteCache) Cache(context.Context, *model.Cliente) error {
	return nil
}

// Observer is notified about cache lookups outcome
type Observer interface {
	Hit()
	Miss()
}

type observedClienteCache struct {
	ClienteCache
	observer Observer
}

// NewObservedClienteCache reports hits and misses of wrapped cache to observer
func NewObservedClienteCache(c ClienteCache, o Observer) ClienteCache {
	return &observedClienteCache{ClienteCache: c, observer: o}
}

func (o *observedClienteCache) FindByRUC(ctx context.Context, ruc string) (*model.Cliente, error) {
	c, err := o.ClienteCache.FindByRUC(ctx, ruc)
	if c != nil {
		o.observer.Hit()
	} else {
		o.observer.Miss()
	}
	return c, err
}
