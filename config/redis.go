package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/templetrust/sevaledger/utils"
)

var Redis *redis.Client

// InitRedis connects to Redis for cross-instance fan-out of ledger
// changes. Redis is optional: without it the change feed stays
// in-process, which is correct for a single instance.
func InitRedis(config *Config) *redis.Client {
	if config.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		utils.LogError("Redis unreachable at %s, continuing without it: %v", config.RedisAddr, err)
		return nil
	}

	Redis = client
	return client
}
