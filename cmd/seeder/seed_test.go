package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/models/enums"
	"github.com/Xushengqwer/board_service/models/vo"
)

type countingBoardService struct {
	requests []*dto.CreateBoardRequest
}

func (s *countingBoardService) CreateBoard(_ context.Context, req *dto.CreateBoardRequest) (*vo.BoardDetailVO, error) {
	s.requests = append(s.requests, req)
	return &vo.BoardDetailVO{ID: "board-id", Name: req.Name}, nil
}

func (s *countingBoardService) GetBoardDetail(context.Context, string) (*vo.BoardDetailVO, error) {
	return nil, nil
}

func (s *countingBoardService) ListBoards(context.Context, *dto.ListBoardsRequest) (*vo.BoardPageVO, error) {
	return nil, nil
}

func (s *countingBoardService) UpdateBoard(context.Context, string, *dto.UpdateBoardRequest) (*vo.BoardDetailVO, error) {
	return nil, nil
}

func (s *countingBoardService) DeleteBoard(context.Context, string) error { return nil }

func (s *countingBoardService) RefreshBoardDetailCache(context.Context, string) error { return nil }

type countingPostRepo struct {
	posts []*entities.Post
}

func (r *countingPostRepo) CreatePost(_ context.Context, _ *gorm.DB, post *entities.Post) error {
	r.posts = append(r.posts, post)
	return nil
}

func (r *countingPostRepo) CountPostsByBoardIDs(context.Context, []string) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func (r *countingPostRepo) DeletePostsByBoardID(context.Context, *gorm.DB, string) (int64, error) {
	return 0, nil
}

func TestSeeder_GeneratesValidRoleLists(t *testing.T) {
	svc := &countingBoardService{}
	posts := &countingPostRepo{}
	seeder := NewSeeder(svc, posts, nil, zap.NewNop(), 7)

	created := seeder.Seed(context.Background(), 20, 3)
	assert.Equal(t, 20, created)
	assert.Len(t, svc.requests, 20)
	assert.LessOrEqual(t, len(posts.posts), 60)

	for _, req := range svc.requests {
		assert.NotEmpty(t, req.Name)
		for _, list := range [][]string{req.CreateRoleList, req.ModifyRoleList, req.ReadRoleList} {
			assert.LessOrEqual(t, len(list), 4)
			_, err := enums.EncodeRoleList(list)
			assert.NoError(t, err)
		}
	}
	for _, p := range posts.posts {
		assert.Equal(t, "board-id", p.BoardID)
		assert.Len(t, p.AuthorID, 36)
	}
}
