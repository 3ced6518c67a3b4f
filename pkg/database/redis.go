package database

import (
	"context"
	"fmt"
	"log"

	"github.com/javier223222/soft-skills-practice-api/internal/config"

	"github.com/go-redis/redis/v8"
)

// InitRedis connects the optional catalog cache. Callers treat a nil client
// as "cache disabled".
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     50,
		MinIdleConns: 5,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}
