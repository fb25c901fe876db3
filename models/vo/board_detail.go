package vo

import (
	"errors"
	"fmt"

	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/models/enums"
)

// ErrNilBoard 投影的输入实体为 nil
var ErrNilBoard = errors.New("board entity is nil")

// BoardDetailVO 看板详情视图，只用于响应（以及详情缓存）。
// 三个角色字段为解码后的有序列表，始终非 nil，JSON 中输出为 [] 而不是 null。
type BoardDetailVO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	CreateRoleList []string `json:"createRoleList"`
	ModifyRoleList []string `json:"modifyRoleList"`
	ReadRoleList   []string `json:"readRoleList"`
}

// NewBoardDetailVOFromEntity 将 Board 实体投影为详情视图。
//   - id / name / description 原样复制
//   - 三个角色字段任意一个解码失败，整个投影失败，返回 nil 和包装了
//     enums.ErrMalformedRoleField 的错误（错误信息带出问题列名）
//   - 不修改入参
func NewBoardDetailVOFromEntity(board *entities.Board) (*BoardDetailVO, error) {
	if board == nil {
		return nil, ErrNilBoard
	}

	createRoles, err := enums.DecodeNullRoleList(board.CreateRoles)
	if err != nil {
		return nil, fmt.Errorf("看板 %s 的 create_role_list 无法解码: %w", board.ID, err)
	}
	modifyRoles, err := enums.DecodeNullRoleList(board.ModifyRoles)
	if err != nil {
		return nil, fmt.Errorf("看板 %s 的 modify_role_list 无法解码: %w", board.ID, err)
	}
	readRoles, err := enums.DecodeNullRoleList(board.ReadRoles)
	if err != nil {
		return nil, fmt.Errorf("看板 %s 的 read_role_list 无法解码: %w", board.ID, err)
	}

	return &BoardDetailVO{
		ID:             board.ID,
		Name:           board.Name,
		Description:    board.Description.String,
		CreateRoleList: createRoles,
		ModifyRoleList: modifyRoles,
		ReadRoleList:   readRoles,
	}, nil
}
