package config

import (
	"context"
	"time"

	"SmartCart-Backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     utils.GetConfig("REDIS_ADDR"),
		Password: utils.GetConfig("REDIS_PASSWORD"),
		DB:       utils.GetConfigInt("REDIS_DB", 0),
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Errorf("redis connection failed: %v", err)
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
