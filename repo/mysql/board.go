package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/Xushengqwer/board_service/models/entities"
)

// BoardRepository 定义了看板在 MySQL 中的持久化操作。
type BoardRepository interface {
	// CreateBoard 插入一条新看板。
	// - db 可以是事务对象，也可以是普通连接。
	// - 成功后 board.ID / CreatedAt / UpdatedAt 被回填。
	CreateBoard(ctx context.Context, db *gorm.DB, board *entities.Board) error

	// GetBoardByID 按 ID 查询未被软删除的看板。
	// - 不存在时返回 commonerrors.ErrRepoNotFound。
	GetBoardByID(ctx context.Context, id string) (*entities.Board, error)

	// GetBoardByIDFromSource 同 GetBoardByID，但强制走主库。
	// - 用于写后立即读取的场景，避免读到尚未同步的从库。
	GetBoardByIDFromSource(ctx context.Context, id string) (*entities.Board, error)

	// ListBoards 按创建时间倒序分页查询，同时返回总数。
	ListBoards(ctx context.Context, offset, limit int) ([]*entities.Board, int64, error)

	// ListAllBoardsInBatches 分批遍历全部看板，供后台巡检使用。
	// - fn 返回错误时遍历终止并返回该错误。
	ListAllBoardsInBatches(ctx context.Context, batchSize int, fn func(batch []*entities.Board) error) error

	// UpdateBoard 按列名更新部分字段，总会刷新 updated_at。
	// - fields 为空时直接返回 nil。
	// - 记录不存在时返回 commonerrors.ErrRepoNotFound；内容未变化的更新返回 nil。
	UpdateBoard(ctx context.Context, id string, fields map[string]interface{}) error

	// DeleteBoardCascade 在一个事务中软删除看板拥有的全部帖子和看板本身。
	// - 返回被删除的帖子数。
	// - 看板不存在时返回 commonerrors.ErrRepoNotFound，事务回滚。
	DeleteBoardCascade(ctx context.Context, id string) (int64, error)
}

type boardRepository struct {
	db       *gorm.DB
	postRepo PostRepository
	logger   *zap.Logger
}

// NewBoardRepository 构造 BoardRepository。postRepo 用于级联删除。
func NewBoardRepository(db *gorm.DB, postRepo PostRepository, logger *zap.Logger) BoardRepository {
	return &boardRepository{
		db:       db,
		postRepo: postRepo,
		logger:   logger,
	}
}

func (r *boardRepository) CreateBoard(ctx context.Context, db *gorm.DB, board *entities.Board) error {
	return db.WithContext(ctx).Create(board).Error
}

func (r *boardRepository) GetBoardByID(ctx context.Context, id string) (*entities.Board, error) {
	return r.getBoard(r.db.WithContext(ctx), id)
}

func (r *boardRepository) GetBoardByIDFromSource(ctx context.Context, id string) (*entities.Board, error) {
	return r.getBoard(r.db.WithContext(ctx).Clauses(dbresolver.Write), id)
}

func (r *boardRepository) getBoard(db *gorm.DB, id string) (*entities.Board, error) {
	var board entities.Board
	err := db.Where("id = ?", id).First(&board).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) ListBoards(ctx context.Context, offset, limit int) ([]*entities.Board, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Board{}).Count(&total).Error; err != nil {
		r.logger.Error("统计看板总数失败", zap.Error(err))
		return nil, 0, fmt.Errorf("统计看板总数失败: %w", err)
	}
	if total == 0 {
		return []*entities.Board{}, 0, nil
	}

	var boards []*entities.Board
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&boards).Error
	if err != nil {
		r.logger.Error("分页查询看板失败", zap.Error(err), zap.Int("offset", offset), zap.Int("limit", limit))
		return nil, 0, fmt.Errorf("分页查询看板失败: %w", err)
	}
	return boards, total, nil
}

func (r *boardRepository) ListAllBoardsInBatches(ctx context.Context, batchSize int, fn func(batch []*entities.Board) error) error {
	var batch []*entities.Board
	result := r.db.WithContext(ctx).
		Order("id").
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, batchNo int) error {
			r.logger.Debug("巡检读取看板批次", zap.Int("batch", batchNo), zap.Int("size", len(batch)))
			return fn(batch)
		})
	return result.Error
}

func (r *boardRepository) UpdateBoard(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		r.logger.Info("没有需要更新的看板字段", zap.String("boardID", id))
		return nil
	}
	fields["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Board{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		r.logger.Error("更新看板失败", zap.Error(result.Error), zap.String("boardID", id), zap.Any("fields", fields))
		return result.Error
	}
	if result.RowsAffected == 0 {
		// MySQL 对值未变化的行不计入 RowsAffected，需回主库确认记录是否存在
		var n int64
		err := r.db.WithContext(ctx).
			Clauses(dbresolver.Write).
			Model(&entities.Board{}).
			Where("id = ?", id).
			Count(&n).Error
		if err != nil {
			r.logger.Error("确认看板是否存在失败", zap.Error(err), zap.String("boardID", id))
			return fmt.Errorf("确认看板是否存在失败: %w", err)
		}
		if n == 0 {
			r.logger.Warn("更新看板未命中记录", zap.String("boardID", id))
			return commonerrors.ErrRepoNotFound
		}
	}
	return nil
}

func (r *boardRepository) DeleteBoardCascade(ctx context.Context, id string) (int64, error) {
	var deletedPosts int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 先删帖子，再删看板；任何一步失败整体回滚
		n, err := r.postRepo.DeletePostsByBoardID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("删除看板下的帖子失败: %w", err)
		}
		deletedPosts = n

		// 2. 软删除看板本身
		result := tx.WithContext(ctx).Where("id = ?", id).Delete(&entities.Board{})
		if result.Error != nil {
			return fmt.Errorf("删除看板失败: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return commonerrors.ErrRepoNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, commonerrors.ErrRepoNotFound) {
			r.logger.Error("级联删除看板事务失败", zap.Error(err), zap.String("boardID", id))
		}
		return 0, err
	}

	r.logger.Info("看板及其帖子已删除", zap.String("boardID", id), zap.Int64("deletedPosts", deletedPosts))
	return deletedPosts, nil
}
