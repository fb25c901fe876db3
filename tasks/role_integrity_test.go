package tasks

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/models/entities"
)

type stubScanner struct {
	batches      [][]*entities.Board
	err          error
	gotBatchSize int
}

func (s *stubScanner) ListAllBoardsInBatches(_ context.Context, batchSize int, fn func([]*entities.Board) error) error {
	s.gotBatchSize = batchSize
	if s.err != nil {
		return s.err
	}
	for _, b := range s.batches {
		if err := fn(b); err != nil {
			return err
		}
	}
	return nil
}

func roleBoard(id, create string) *entities.Board {
	b := &entities.Board{
		Name:        "board-" + id,
		CreateRoles: sql.NullString{String: create, Valid: true},
	}
	b.ID = id
	return b
}

func newTask(t *testing.T, scanner BoardScanner, cfg config.RoleScanConfig) *RoleIntegrityTask {
	t.Helper()
	task, err := NewRoleIntegrityTask(scanner, cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { <-task.Stop().Done() })
	return task
}

func TestRoleIntegrityTask_ScanOnce(t *testing.T) {
	scanner := &stubScanner{batches: [][]*entities.Board{
		{roleBoard("b1", "ADMIN,PRESIDENT"), roleBoard("b2", "ADMIN,,PRESIDENT")},
		{roleBoard("b3", "LEADER_9"), roleBoard("b4", "")},
	}}
	task := newTask(t, scanner, config.RoleScanConfig{BatchSize: 2})

	malformed, err := task.ScanOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, malformed)
	assert.Equal(t, 2, scanner.gotBatchSize)
}

func TestRoleIntegrityTask_DefaultsAndErrors(t *testing.T) {
	scanner := &stubScanner{err: errors.New("db down")}
	task := newTask(t, scanner, config.RoleScanConfig{})

	_, err := task.ScanOnce(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 200, scanner.gotBatchSize)
	assert.Equal(t, "@every 1h", task.schedule)
}

func TestRoleIntegrityTask_InvalidSchedule(t *testing.T) {
	_, err := NewRoleIntegrityTask(&stubScanner{}, config.RoleScanConfig{CronSpec: "not a cron"}, zap.NewNop())
	assert.Error(t, err)
}
