package vo

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/models/enums"
)

func validString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestNewBoardDetailVOFromEntity_NoticeBoard(t *testing.T) {
	board := &entities.Board{
		BaseModel:   entities.BaseModel{ID: "b1"},
		Name:        "Notice",
		Description: validString("General notices"),
		CreateRoles: validString("PRESIDENT,ADMIN"),
		ModifyRoles: validString("ADMIN"),
		ReadRoles:   validString(""),
	}

	got, err := NewBoardDetailVOFromEntity(board)
	require.NoError(t, err)

	assert.Equal(t, &BoardDetailVO{
		ID:             "b1",
		Name:           "Notice",
		Description:    "General notices",
		CreateRoleList: []string{"PRESIDENT", "ADMIN"},
		ModifyRoleList: []string{"ADMIN"},
		ReadRoleList:   []string{},
	}, got)
}

func TestNewBoardDetailVOFromEntity_NullFields(t *testing.T) {
	board := &entities.Board{
		BaseModel: entities.BaseModel{ID: "b2"},
		Name:      "Legacy",
	}

	got, err := NewBoardDetailVOFromEntity(board)
	require.NoError(t, err)
	assert.Equal(t, "", got.Description)
	assert.NotNil(t, got.CreateRoleList)
	assert.NotNil(t, got.ModifyRoleList)
	assert.NotNil(t, got.ReadRoleList)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"b2","name":"Legacy","description":"","createRoleList":[],"modifyRoleList":[],"readRoleList":[]}`, string(raw))
}

func TestNewBoardDetailVOFromEntity_MalformedFieldAbortsProjection(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(b *entities.Board)
		column string
	}{
		{name: "create roles", mutate: func(b *entities.Board) { b.CreateRoles = validString("ADMIN,UNKNOWN_ROLE") }, column: "create_role_list"},
		{name: "modify roles", mutate: func(b *entities.Board) { b.ModifyRoles = validString("ADMIN,") }, column: "modify_role_list"},
		{name: "read roles", mutate: func(b *entities.Board) { b.ReadRoles = validString("common") }, column: "read_role_list"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			board := &entities.Board{
				BaseModel:   entities.BaseModel{ID: "b3"},
				Name:        "Broken",
				CreateRoles: validString("ADMIN"),
				ModifyRoles: validString("ADMIN"),
				ReadRoles:   validString("COMMON"),
			}
			tc.mutate(board)

			got, err := NewBoardDetailVOFromEntity(board)
			require.ErrorIs(t, err, enums.ErrMalformedRoleField)
			assert.Nil(t, got)
			assert.Contains(t, err.Error(), tc.column)
		})
	}
}

func TestNewBoardDetailVOFromEntity_DoesNotMutateInput(t *testing.T) {
	board := &entities.Board{
		BaseModel:   entities.BaseModel{ID: "b4"},
		Name:        "Free",
		Description: validString("anything"),
		CreateRoles: validString("COMMON"),
		ModifyRoles: validString("ADMIN,PRESIDENT"),
		ReadRoles:   validString("NONE"),
	}
	before := *board

	got, err := NewBoardDetailVOFromEntity(board)
	require.NoError(t, err)
	assert.Equal(t, before, *board)

	got.ModifyRoleList[0] = "CHANGED"
	assert.Equal(t, "ADMIN,PRESIDENT", board.ModifyRoles.String)
}

func TestNewBoardDetailVOFromEntity_Nil(t *testing.T) {
	got, err := NewBoardDetailVOFromEntity(nil)
	assert.ErrorIs(t, err, ErrNilBoard)
	assert.Nil(t, got)
}

func TestNewBoardSummaryVOFromEntity(t *testing.T) {
	board := &entities.Board{
		BaseModel: entities.BaseModel{ID: "b5"},
		Name:      "Clubs",
		// 损坏的角色字段不影响列表项
		CreateRoles: validString("???"),
	}
	got := NewBoardSummaryVOFromEntity(board, 7)
	assert.Equal(t, "b5", got.ID)
	assert.Equal(t, int64(7), got.PostCount)

	assert.Equal(t, BoardSummaryVO{}, NewBoardSummaryVOFromEntity(nil, 3))
}
