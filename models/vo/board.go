package vo

import (
	"time"

	"github.com/Xushengqwer/board_service/models/entities"
)

// BoardSummaryVO 看板列表项。列表不解码角色字段，单个看板数据损坏不影响整页。
type BoardSummaryVO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PostCount   int64     `json:"postCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BoardPageVO 看板分页结果
type BoardPageVO struct {
	Boards []BoardSummaryVO `json:"boards"`
	Total  int64            `json:"total"`
}

// NewBoardSummaryVOFromEntity 转换单个看板；postCount 由调用方查询后传入
func NewBoardSummaryVOFromEntity(board *entities.Board, postCount int64) BoardSummaryVO {
	if board == nil {
		return BoardSummaryVO{}
	}
	return BoardSummaryVO{
		ID:          board.ID,
		Name:        board.Name,
		Description: board.Description.String,
		PostCount:   postCount,
		CreatedAt:   board.CreatedAt,
		UpdatedAt:   board.UpdatedAt,
	}
}

// RoleListVO GET /roles 的响应
type RoleListVO struct {
	Roles []string `json:"roles"`
}
