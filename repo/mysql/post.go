package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/models/entities"
)

// PostRepository 看板所拥有帖子的持久化操作。
// 帖子本身的业务不在本服务内，这里只保留看板生命周期需要的部分。
type PostRepository interface {
	// CreatePost 插入一条帖子，db 可以是事务对象
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// CountPostsByBoardIDs 一次 GROUP BY 统计多个看板下未删除的帖子数。
	// - 没有帖子的看板不出现在结果中，调用方按 0 处理。
	// - boardIDs 为空时直接返回空 map，不访问数据库。
	CountPostsByBoardIDs(ctx context.Context, boardIDs []string) (map[string]int64, error)

	// DeletePostsByBoardID 软删除看板下的全部帖子，返回受影响行数。
	// 通常在 BoardRepository.DeleteBoardCascade 的事务中调用。
	DeletePostsByBoardID(ctx context.Context, db *gorm.DB, boardID string) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建 PostRepository 实例
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	return db.WithContext(ctx).Create(post).Error
}

type boardPostCount struct {
	BoardID string
	Cnt     int64
}

func (r *postRepository) CountPostsByBoardIDs(ctx context.Context, boardIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(boardIDs))
	if len(boardIDs) == 0 {
		return counts, nil
	}

	var rows []boardPostCount
	err := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Select("board_id, COUNT(*) AS cnt").
		Where("board_id IN ?", boardIDs).
		Group("board_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.BoardID] = row.Cnt
	}
	return counts, nil
}

func (r *postRepository) DeletePostsByBoardID(ctx context.Context, db *gorm.DB, boardID string) (int64, error) {
	result := db.WithContext(ctx).Where("board_id = ?", boardID).Delete(&entities.Post{})
	return result.RowsAffected, result.Error
}
