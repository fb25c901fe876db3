package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/models/enums"
	"github.com/Xushengqwer/board_service/models/events"
)

// BoardCacheWarmer 由 service.BoardService 实现
type BoardCacheWarmer interface {
	RefreshBoardDetailCache(ctx context.Context, boardID string) error
}

// BoardChangedHandler 消费 board.changed，回源重建看板详情缓存。
// 以下情况记录日志后丢弃，不重试:
//   - 消息无法解析或缺少 board_id
//   - 看板已不存在
//   - 看板角色字段损坏（重试无法修复，交给巡检任务和人工处理）
type BoardChangedHandler struct {
	logger *zap.Logger
	warmer BoardCacheWarmer
}

func NewBoardChangedHandler(logger *zap.Logger, warmer BoardCacheWarmer) *BoardChangedHandler {
	return &BoardChangedHandler{
		logger: logger,
		warmer: warmer,
	}
}

func (h *BoardChangedHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.BoardChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("BoardChangedHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil
	}
	if event.BoardID == "" {
		h.logger.Error("BoardChangedHandler: 消息缺少 board_id", zap.String("event_id", event.EventID))
		return nil
	}

	err := h.warmer.RefreshBoardDetailCache(ctx, event.BoardID)
	switch {
	case err == nil:
		h.logger.Debug("BoardChangedHandler: 看板详情缓存已重建",
			zap.String("event_id", event.EventID),
			zap.String("board_id", event.BoardID))
		return nil
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		h.logger.Warn("BoardChangedHandler: 看板已不存在，跳过", zap.String("board_id", event.BoardID))
		return nil
	case errors.Is(err, enums.ErrMalformedRoleField):
		h.logger.Error("BoardChangedHandler: 看板角色字段损坏，无法缓存",
			zap.String("board_id", event.BoardID),
			zap.Error(err))
		return nil
	default:
		return fmt.Errorf("BoardChangedHandler: 重建看板 %s 缓存失败: %w", event.BoardID, err)
	}
}
