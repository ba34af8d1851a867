package redisdb

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Redis adapta um redis.UniversalClient (nó único ou cluster) ao store.Backend.
type Redis struct {
	client redis.UniversalClient
}

func New(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

// Connect abre o cliente e testa a conexão. Com addrs não vazio usa o cliente
// universal (um endereço vira cliente simples, vários viram cluster); senão usa a URL.
func Connect(ctx context.Context, url string, addrs []string) (*Redis, error) {
	var client redis.UniversalClient
	if len(addrs) > 0 {
		client = redis.NewUniversalClient(&redis.UniversalOptions{Addrs: addrs})
	} else {
		opts, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opts)
	}

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(client), nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Keys roda KEYS em todos os masters quando o cliente é de cluster.
func (r *Redis) Keys(ctx context.Context, pattern string) ([]string, error) {
	cluster, ok := r.client.(*redis.ClusterClient)
	if !ok {
		return r.client.Keys(ctx, pattern).Result()
	}

	var (
		mu   sync.Mutex
		keys []string
	)
	err := cluster.ForEachMaster(ctx, func(ctx context.Context, master *redis.Client) error {
		found, err := master.Keys(ctx, pattern).Result()
		if err != nil {
			return err
		}
		mu.Lock()
		keys = append(keys, found...)
		mu.Unlock()
		return nil
	})
	return keys, err
}

func (r *Redis) Del(ctx context.Context, key string) (int64, error) {
	return r.client.Del(ctx, key).Result()
}

func (r *Redis) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	return n > 0, err
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
