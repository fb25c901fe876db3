package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/myErrors"
)

// BoardCache 看板详情的 Redis 缓存。
// - Key: constant.BoardDetailCacheKeyPrefix + boardID
// - Value: vo.BoardDetailVO 的 JSON，写入的一定是已成功投影的视图
type BoardCache interface {
	// GetBoardDetail 读取缓存的详情，未命中返回 myErrors.ErrCacheMiss
	GetBoardDetail(ctx context.Context, boardID string) (*vo.BoardDetailVO, error)

	// SetBoardDetail 写入详情并设置过期时间
	SetBoardDetail(ctx context.Context, detail *vo.BoardDetailVO, ttl time.Duration) error

	// DeleteBoardDetail 使缓存失效，Key 不存在不视为错误
	DeleteBoardDetail(ctx context.Context, boardID string) error
}

type boardCache struct {
	redisClient *redis.Client
	logger      *zap.Logger
}

// NewBoardCache 构造 BoardCache
func NewBoardCache(redisClient *redis.Client, logger *zap.Logger) BoardCache {
	return &boardCache{
		redisClient: redisClient,
		logger:      logger,
	}
}

func boardDetailKey(boardID string) string {
	return constant.BoardDetailCacheKeyPrefix + boardID
}

func (c *boardCache) GetBoardDetail(ctx context.Context, boardID string) (*vo.BoardDetailVO, error) {
	key := boardDetailKey(boardID)

	raw, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("读取看板详情缓存失败", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("读取看板详情缓存 (key: %s) 失败: %w", key, err)
	}

	var detail vo.BoardDetailVO
	if err := json.Unmarshal(raw, &detail); err != nil {
		// 缓存内容损坏时删掉它，当作未命中让上层回源
		c.logger.Warn("看板详情缓存反序列化失败，删除该缓存", zap.String("key", key), zap.Error(err))
		if delErr := c.redisClient.Del(ctx, key).Err(); delErr != nil {
			c.logger.Error("删除损坏的看板详情缓存失败", zap.String("key", key), zap.Error(delErr))
		}
		return nil, myErrors.ErrCacheMiss
	}
	return &detail, nil
}

func (c *boardCache) SetBoardDetail(ctx context.Context, detail *vo.BoardDetailVO, ttl time.Duration) error {
	if detail == nil {
		return fmt.Errorf("不能缓存空的看板详情")
	}
	key := boardDetailKey(detail.ID)

	raw, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("序列化看板详情失败: %w", err)
	}
	if err := c.redisClient.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.logger.Error("写入看板详情缓存失败", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("写入看板详情缓存 (key: %s) 失败: %w", key, err)
	}
	c.logger.Debug("看板详情已缓存", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (c *boardCache) DeleteBoardDetail(ctx context.Context, boardID string) error {
	key := boardDetailKey(boardID)
	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		c.logger.Error("删除看板详情缓存失败", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("删除看板详情缓存 (key: %s) 失败: %w", key, err)
	}
	return nil
}
