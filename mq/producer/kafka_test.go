package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/models/events"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func newTestProducer(w *recordingWriter) *KafkaProducer {
	return &KafkaProducer{
		writer: w,
		logger: zap.NewNop(),
		topics: config.Topics{BoardChanged: "board.changed", BoardDeleted: "board.deleted"},
	}
}

func TestSendBoardChangedEvent(t *testing.T) {
	w := &recordingWriter{}
	p := newTestProducer(w)

	require.NoError(t, p.SendBoardChangedEvent(context.Background(), "b1"))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "board.changed", w.msgs[0].Topic)
	assert.Equal(t, []byte("b1"), w.msgs[0].Key)

	var event events.BoardChangedEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &event))
	assert.Equal(t, "b1", event.BoardID)
	assert.NotEmpty(t, event.EventID)
	assert.False(t, event.Timestamp.IsZero())
}

func TestSendBoardDeletedEvent(t *testing.T) {
	w := &recordingWriter{}
	p := newTestProducer(w)

	require.NoError(t, p.SendBoardDeletedEvent(context.Background(), "b1", 4))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "board.deleted", w.msgs[0].Topic)

	var event events.BoardDeletedEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &event))
	assert.Equal(t, int64(4), event.DeletedPosts)
}

func TestSendEvent_WriterError(t *testing.T) {
	p := newTestProducer(&recordingWriter{err: errors.New("broker unavailable")})
	err := p.SendBoardChangedEvent(context.Background(), "b1")
	assert.EqualError(t, err, "broker unavailable")
}
