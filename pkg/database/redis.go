package database

import (
	"context"
	"fmt"
	"time"

	"study_planner_backend/internal/config"

	"github.com/go-redis/redis/v8"
)

const redisPingTimeout = 2 * time.Second

// InitRedis 建立计划缓存用的连接。redis 在这个服务里只承载
// latest-plan 一类易失数据，启动时 ping 不通直接报错，由上层决定降级。
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}
