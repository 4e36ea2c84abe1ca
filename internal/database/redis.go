package database

import (
	"context"
	"fmt"
	"time"

	"go-gin-concert-booking/config"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 3 * time.Second

// InitRedis 建立排隊、分散式鎖、事件流與排行共用的 client
func InitRedis(config *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,

		// 付款鎖輪詢與 XREADGROUP 阻塞讀會同時佔用連線
		PoolSize:     50,
		MinIdleConns: 5,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", rdb.Options().Addr, err)
	}

	return rdb, nil
}
