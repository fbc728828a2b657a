package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// EntityCache guarda representações serializadas de entidades sob um prefixo
// comum, invalidadas pelos assinantes de eventos de cache.
type EntityCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewEntityCache(client redis.UniversalClient, prefix string, ttl time.Duration) *EntityCache {
	return &EntityCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *EntityCache) key(id string) string {
	return fmt.Sprintf("%s:%s", c.prefix, id)
}

// Set grava o valor serializado de uma entidade.
func (c *EntityCache) Set(ctx context.Context, id string, value []byte) error {
	return c.client.Set(ctx, c.key(id), value, c.ttl).Err()
}

// Get retorna o valor de uma entidade, ou nil quando não há entrada.
func (c *EntityCache) Get(ctx context.Context, id string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Invalidate remove as entradas das entidades informadas.
func (c *EntityCache) Invalidate(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.key(id)
	}
	return c.client.Del(ctx, keys...).Err()
}

// InvalidateAll remove todas as entradas do prefixo em varredura incremental.
func (c *EntityCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+":*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 128 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		return c.client.Del(ctx, keys...).Err()
	}
	return nil
}
