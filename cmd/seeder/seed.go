package main

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/models/enums"
	"github.com/Xushengqwer/board_service/repo/mysql"
	"github.com/Xushengqwer/board_service/service"
)

// Seeder 通过服务层生成看板，再直接写入少量帖子
type Seeder struct {
	boardSvc service.BoardService
	postRepo mysql.PostRepository
	db       *gorm.DB
	logger   *zap.Logger
	faker    *gofakeit.Faker
}

func NewSeeder(boardSvc service.BoardService, postRepo mysql.PostRepository, db *gorm.DB, logger *zap.Logger, seed int64) *Seeder {
	return &Seeder{
		boardSvc: boardSvc,
		postRepo: postRepo,
		db:       db,
		logger:   logger,
		faker:    gofakeit.New(seed),
	}
}

// Seed 顺序创建 numBoards 个看板，每个看板 0..maxPosts 篇帖子。返回成功创建的看板数。
func (s *Seeder) Seed(ctx context.Context, numBoards, maxPosts int) int {
	created := 0
	for i := 0; i < numBoards; i++ {
		req := s.randomBoardRequest()
		detail, err := s.boardSvc.CreateBoard(ctx, req)
		if err != nil {
			s.logger.Error(fmt.Sprintf("创建看板 %d/%d 失败", i+1, numBoards), zap.String("name", req.Name), zap.Error(err))
			continue
		}
		created++

		n := 0
		if maxPosts > 0 {
			n = s.faker.Number(0, maxPosts)
		}
		for j := 0; j < n; j++ {
			post := &entities.Post{
				BoardID:  detail.ID,
				Title:    s.faker.Sentence(s.faker.Number(3, 8)),
				Content:  s.faker.Paragraph(2, 4, 15, "\n\n"),
				AuthorID: uuid.NewString(),
			}
			if err := s.postRepo.CreatePost(ctx, s.db, post); err != nil {
				s.logger.Error("创建帖子失败", zap.String("boardID", detail.ID), zap.Error(err))
			}
		}
		s.logger.Info(fmt.Sprintf("已创建看板 %d/%d", i+1, numBoards),
			zap.String("boardID", detail.ID),
			zap.String("name", detail.Name),
			zap.Int("posts", n))
	}
	return created
}

func (s *Seeder) randomBoardRequest() *dto.CreateBoardRequest {
	desc := s.faker.Sentence(s.faker.Number(5, 12))
	return &dto.CreateBoardRequest{
		Name:           s.faker.Company(),
		Description:    &desc,
		CreateRoleList: s.randomRoleList(),
		ModifyRoleList: s.randomRoleList(),
		ReadRoleList:   s.randomRoleList(),
	}
}

// randomRoleList 从已知角色中不重复地挑选 0..4 个
func (s *Seeder) randomRoleList() []string {
	names := enums.RoleNames()
	s.faker.ShuffleStrings(names)
	return names[:s.faker.Number(0, 4)]
}
