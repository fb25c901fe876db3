package consumer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/models/enums"
)

type stubWarmer struct {
	calls []string
	err   error
}

func (s *stubWarmer) RefreshBoardDetailCache(_ context.Context, boardID string) error {
	s.calls = append(s.calls, boardID)
	return s.err
}

func TestBoardChangedHandler(t *testing.T) {
	testCases := []struct {
		name      string
		value     string
		warmErr   error
		wantCalls []string
		wantErr   bool
	}{
		{name: "refreshes cache", value: `{"event_id":"e1","board_id":"b1"}`, wantCalls: []string{"b1"}},
		{name: "bad json is dropped", value: `{`, wantCalls: nil},
		{name: "missing board id is dropped", value: `{"event_id":"e2"}`, wantCalls: nil},
		{name: "deleted board is dropped", value: `{"board_id":"b2"}`, warmErr: commonerrors.ErrRepoNotFound, wantCalls: []string{"b2"}},
		{name: "malformed roles are dropped", value: `{"board_id":"b3"}`, warmErr: fmt.Errorf("wrap: %w", enums.ErrMalformedRoleField), wantCalls: []string{"b3"}},
		{name: "transient error surfaces", value: `{"board_id":"b4"}`, warmErr: errors.New("redis timeout"), wantCalls: []string{"b4"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			warmer := &stubWarmer{err: tc.warmErr}
			h := NewBoardChangedHandler(zap.NewNop(), warmer)

			err := h.Handle(context.Background(), kafka.Message{Topic: "board.changed", Value: []byte(tc.value)})
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantCalls, warmer.calls)
		})
	}
}

func TestNewConsumer_Validation(t *testing.T) {
	h := NewBoardChangedHandler(zap.NewNop(), &stubWarmer{})

	_, err := NewConsumer(&config.KafkaConfig{Brokers: []string{"localhost:9092"}}, "g", "", h, zap.NewNop())
	assert.Error(t, err)

	_, err = NewConsumer(&config.KafkaConfig{}, "g", "board.changed", h, zap.NewNop())
	assert.Error(t, err)
}
