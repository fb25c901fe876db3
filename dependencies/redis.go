package dependencies

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/board_service/config"
)

// NewRedisOptions 把配置转换成 go-redis 选项，超时单位为秒，0 表示使用 go-redis 默认值
func NewRedisOptions(cfg *appConfig.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}
}

// InitRedis 创建客户端并 Ping 一次确认可用
func InitRedis(cfg *appConfig.RedisConfig, logger *core.ZapLogger) (*redis.Client, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis 地址 (redisConfig.address) 未配置")
	}
	client := redis.NewClient(NewRedisOptions(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Error("Redis Ping 失败", zap.String("address", cfg.Address), zap.Error(err))
		return nil, fmt.Errorf("连接 Redis (%s) 失败: %w", cfg.Address, err)
	}
	logger.Info("Redis 连接成功", zap.String("address", cfg.Address), zap.Int("db", cfg.DB))
	return client, nil
}
