package clients

import (
	"context"

	"github.com/nahid177/afwan-shop-sub001/internal/cfg"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/redis/go-redis/v9"
)

// RedisClient оборачивает клиент go-redis с настройками из конфигурации.
type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(cfg *cfg.RedisCfg) *RedisClient {
	return &RedisClient{
		Client: redis.NewClient(&redis.Options{
			Addr:         cfg.Addr,
			Username:     cfg.User,
			Password:     cfg.Password,
			DB:           cfg.DB,
			MaxRetries:   cfg.MaxRetries,
			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
		}),
	}
}

// Ping проверяет доступность сервера Redis.
func (c *RedisClient) Ping(ctx context.Context) error {
	const op = "RedisClient.Ping"

	if err := c.Client.Ping(ctx).Err(); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
