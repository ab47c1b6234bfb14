package database

import (
	"context"
	"log"

	"shop_manager/config"

	"github.com/redis/go-redis/v9"
)

// Redis là cache cho dashboard, có thể nil nếu không cấu hình REDIS_ADDR.
var Redis *redis.Client

func ConnectRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, dashboard cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis ping failed, dashboard cache disabled: %v", err)
		return
	}

	Redis = client
	log.Println("Connection Opened to Redis")
}
