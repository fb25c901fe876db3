package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/metrics"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/models/enums"
	"github.com/Xushengqwer/board_service/models/vo"
)

// scanTimeout 单次巡检的超时
const scanTimeout = 10 * time.Minute

// BoardScanner 由 mysql.BoardRepository 实现
type BoardScanner interface {
	ListAllBoardsInBatches(ctx context.Context, batchSize int, fn func(batch []*entities.Board) error) error
}

// RoleIntegrityTask 定时遍历全部看板，找出角色字段无法解码的记录。
// 只记录日志，不修改数据。
type RoleIntegrityTask struct {
	scanner   BoardScanner
	cron      *cron.Cron
	schedule  string
	batchSize int
	logger    *zap.Logger
}

// NewRoleIntegrityTask 创建并启动巡检任务。cronSpec 非法时返回错误。
func NewRoleIntegrityTask(scanner BoardScanner, cfg config.RoleScanConfig, logger *zap.Logger) (*RoleIntegrityTask, error) {
	schedule := cfg.CronSpec
	if schedule == "" {
		schedule = constant.RoleScanCronSpec
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = constant.RoleScanDefaultBatchSize
	}

	task := &RoleIntegrityTask{
		scanner:   scanner,
		cron:      cron.New(),
		schedule:  schedule,
		batchSize: batchSize,
		logger:    logger,
	}

	entryID, err := task.cron.AddFunc(schedule, task.run)
	if err != nil {
		return nil, fmt.Errorf("添加角色巡检 cron 作业失败 (schedule: %s): %w", schedule, err)
	}
	task.cron.Start()
	logger.Info("角色字段巡检任务已启动", zap.String("schedule", schedule), zap.Int("cronEntryID", int(entryID)))
	return task, nil
}

func (t *RoleIntegrityTask) run() {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	start := time.Now()
	malformed, err := t.ScanOnce(ctx)
	if err != nil {
		t.logger.Error("角色字段巡检失败", zap.Error(err))
		return
	}
	metrics.SetMalformedBoards(malformed)
	t.logger.Info("角色字段巡检完成",
		zap.Int("malformedBoards", malformed),
		zap.Duration("duration", time.Since(start)))
}

// ScanOnce 遍历一次全部看板，返回角色字段损坏的看板数量
func (t *RoleIntegrityTask) ScanOnce(ctx context.Context) (int, error) {
	malformed := 0
	err := t.scanner.ListAllBoardsInBatches(ctx, t.batchSize, func(batch []*entities.Board) error {
		for _, board := range batch {
			if _, err := vo.NewBoardDetailVOFromEntity(board); err != nil {
				if !errors.Is(err, enums.ErrMalformedRoleField) {
					return err
				}
				malformed++
				t.logger.Error("发现角色字段损坏的看板",
					zap.String("boardID", board.ID),
					zap.String("name", board.Name),
					zap.Error(err))
			}
		}
		return ctx.Err()
	})
	if err != nil {
		return malformed, fmt.Errorf("遍历看板失败: %w", err)
	}
	return malformed, nil
}

// Stop 停止调度，返回的 context 在正在执行的巡检结束后 Done
func (t *RoleIntegrityTask) Stop() context.Context {
	t.logger.Info("正在停止角色字段巡检任务...")
	return t.cron.Stop()
}
