package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/models/events"
)

// messageWriter 抽出 kafka.Writer 用到的方法，便于测试替换
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer 看板事件生产者
type KafkaProducer struct {
	writer messageWriter
	logger *zap.Logger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(cfg config.KafkaConfig, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Balancer: &kafka.Hash{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: cfg.Topics,
	}
}

// SendEvent 将事件序列化为 JSON 发到指定主题。key 用于分区，同一看板的事件保持有序。
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, key string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("序列化 Kafka 事件失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("发送 Kafka 消息", zap.String("topic", topic), zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: eventBytes,
	})
	if err != nil {
		p.logger.Error("写入 Kafka 消息失败", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Kafka 消息发送成功", zap.String("topic", topic), zap.String("key", key))
	}
	return err
}

// SendBoardChangedEvent 发送看板变更事件
func (p *KafkaProducer) SendBoardChangedEvent(ctx context.Context, boardID string) error {
	event := events.BoardChangedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		BoardID:   boardID,
	}
	return p.SendEvent(ctx, p.topics.BoardChanged, boardID, event)
}

// SendBoardDeletedEvent 发送看板删除事件
func (p *KafkaProducer) SendBoardDeletedEvent(ctx context.Context, boardID string, deletedPosts int64) error {
	event := events.BoardDeletedEvent{
		EventID:      uuid.New().String(),
		Timestamp:    time.Now(),
		BoardID:      boardID,
		DeletedPosts: deletedPosts,
	}
	return p.SendEvent(ctx, p.topics.BoardDeleted, boardID, event)
}

// Close 刷出缓冲并关闭底层 Writer
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
