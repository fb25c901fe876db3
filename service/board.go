package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/dependencies"
	"github.com/Xushengqwer/board_service/metrics"
	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/models/enums"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/myErrors"
	"github.com/Xushengqwer/board_service/repo/mysql"
	"github.com/Xushengqwer/board_service/repo/redis"
)

// eventTimeout 异步发送事件的超时
const eventTimeout = 10 * time.Second

// BoardEventPublisher 由 producer.KafkaProducer 实现
type BoardEventPublisher interface {
	SendBoardChangedEvent(ctx context.Context, boardID string) error
	SendBoardDeletedEvent(ctx context.Context, boardID string, deletedPosts int64) error
}

// BoardService 看板的业务逻辑
type BoardService interface {
	// CreateBoard 编码角色列表后落库。任何角色名非法时返回 enums.ErrInvalidRoleName，不写库。
	CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*vo.BoardDetailVO, error)

	// GetBoardDetail 先读缓存，未命中时回源并回填缓存。
	// - 看板不存在返回 commonerrors.ErrRepoNotFound
	// - 角色字段损坏返回包裹 enums.ErrMalformedRoleField 的错误
	GetBoardDetail(ctx context.Context, boardID string) (*vo.BoardDetailVO, error)

	// ListBoards 分页列出看板摘要
	ListBoards(ctx context.Context, req *dto.ListBoardsRequest) (*vo.BoardPageVO, error)

	// UpdateBoard 部分更新，返回更新后的详情
	UpdateBoard(ctx context.Context, boardID string, req *dto.UpdateBoardRequest) (*vo.BoardDetailVO, error)

	// DeleteBoard 归档快照后级联删除看板及其帖子。归档失败时不删除。
	DeleteBoard(ctx context.Context, boardID string) error

	// RefreshBoardDetailCache 从主库回源读取并覆盖缓存，供 board.changed 消费者调用
	RefreshBoardDetailCache(ctx context.Context, boardID string) error
}

type boardService struct {
	db        *gorm.DB
	boardRepo mysql.BoardRepository
	postRepo  mysql.PostRepository
	cache     redis.BoardCache
	archive   dependencies.ArchiveStore
	publisher BoardEventPublisher // 可以为 nil，此时不发送事件
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewBoardService 构造 BoardService。db 仅作为 CreateBoard 的写入句柄传给仓库。
func NewBoardService(
	db *gorm.DB,
	boardRepo mysql.BoardRepository,
	postRepo mysql.PostRepository,
	cache redis.BoardCache,
	archive dependencies.ArchiveStore,
	publisher BoardEventPublisher,
	cacheTTL time.Duration,
	logger *zap.Logger,
) BoardService {
	return &boardService{
		db:        db,
		boardRepo: boardRepo,
		postRepo:  postRepo,
		cache:     cache,
		archive:   archive,
		publisher: publisher,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

func (s *boardService) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*vo.BoardDetailVO, error) {
	board := &entities.Board{Name: req.Name}
	if req.Description != nil {
		board.Description = sql.NullString{String: *req.Description, Valid: true}
	}

	var err error
	if board.CreateRoles, err = enums.EncodeNullRoleList(req.CreateRoleList); err != nil {
		return nil, fmt.Errorf("createRoleList: %w", err)
	}
	if board.ModifyRoles, err = enums.EncodeNullRoleList(req.ModifyRoleList); err != nil {
		return nil, fmt.Errorf("modifyRoleList: %w", err)
	}
	if board.ReadRoles, err = enums.EncodeNullRoleList(req.ReadRoleList); err != nil {
		return nil, fmt.Errorf("readRoleList: %w", err)
	}

	if err := s.boardRepo.CreateBoard(ctx, s.db, board); err != nil {
		s.logger.Error("创建看板失败", zap.String("name", req.Name), zap.Error(err))
		return nil, fmt.Errorf("创建看板失败: %w", err)
	}
	s.logger.Info("看板已创建", zap.String("boardID", board.ID), zap.String("name", board.Name))

	s.publishChanged(board.ID)
	return vo.NewBoardDetailVOFromEntity(board)
}

func (s *boardService) GetBoardDetail(ctx context.Context, boardID string) (*vo.BoardDetailVO, error) {
	cached, err := s.cache.GetBoardDetail(ctx, boardID)
	if err == nil {
		metrics.ObserveDetailCache(metrics.CacheHit)
		return cached, nil
	}
	if errors.Is(err, myErrors.ErrCacheMiss) {
		metrics.ObserveDetailCache(metrics.CacheMiss)
	} else {
		// 缓存不可用时降级为直接读库
		metrics.ObserveDetailCache(metrics.CacheError)
		s.logger.Warn("读取看板详情缓存失败，回源数据库", zap.String("boardID", boardID), zap.Error(err))
	}

	detail, err := s.loadDetail(ctx, boardID, false)
	if err != nil {
		return nil, err
	}

	if setErr := s.cache.SetBoardDetail(ctx, detail, s.cacheTTL); setErr != nil {
		s.logger.Warn("回填看板详情缓存失败", zap.String("boardID", boardID), zap.Error(setErr))
	}
	return detail, nil
}

func (s *boardService) RefreshBoardDetailCache(ctx context.Context, boardID string) error {
	// 事件紧跟在写入之后到达，从库可能还没同步，必须读主库
	detail, err := s.loadDetail(ctx, boardID, true)
	if err != nil {
		return err
	}
	return s.cache.SetBoardDetail(ctx, detail, s.cacheTTL)
}

// loadDetail 从数据库读取并投影。投影失败说明库里的数据已损坏，按数据完整性错误记录。
// fromSource 为 true 时强制读主库。
func (s *boardService) loadDetail(ctx context.Context, boardID string, fromSource bool) (*vo.BoardDetailVO, error) {
	var board *entities.Board
	var err error
	if fromSource {
		board, err = s.boardRepo.GetBoardByIDFromSource(ctx, boardID)
	} else {
		board, err = s.boardRepo.GetBoardByID(ctx, boardID)
	}
	if err != nil {
		if !errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Error("查询看板失败", zap.String("boardID", boardID), zap.Error(err))
		}
		return nil, err
	}

	detail, err := vo.NewBoardDetailVOFromEntity(board)
	if err != nil {
		metrics.IncProjectionFailure()
		s.logger.Error("看板角色字段损坏，无法生成详情",
			zap.String("boardID", boardID),
			zap.String("create_role_list", board.CreateRoles.String),
			zap.String("modify_role_list", board.ModifyRoles.String),
			zap.String("read_role_list", board.ReadRoles.String),
			zap.Error(err))
		return nil, err
	}
	return detail, nil
}

func (s *boardService) ListBoards(ctx context.Context, req *dto.ListBoardsRequest) (*vo.BoardPageVO, error) {
	boards, total, err := s.boardRepo.ListBoards(ctx, req.GetOffset(), req.GetLimit())
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(boards))
	for _, board := range boards {
		ids = append(ids, board.ID)
	}
	counts, err := s.postRepo.CountPostsByBoardIDs(ctx, ids)
	if err != nil {
		s.logger.Error("统计看板帖子数失败", zap.Strings("boardIDs", ids), zap.Error(err))
		return nil, fmt.Errorf("统计看板帖子数失败: %w", err)
	}

	summaries := make([]vo.BoardSummaryVO, 0, len(boards))
	for _, board := range boards {
		summaries = append(summaries, vo.NewBoardSummaryVOFromEntity(board, counts[board.ID]))
	}

	return &vo.BoardPageVO{
		Boards: summaries,
		Total:  total,
	}, nil
}

func (s *boardService) UpdateBoard(ctx context.Context, boardID string, req *dto.UpdateBoardRequest) (*vo.BoardDetailVO, error) {
	if req.IsEmpty() {
		return s.loadDetail(ctx, boardID, false)
	}

	fields, err := buildBoardUpdates(req)
	if err != nil {
		return nil, err
	}
	if err := s.boardRepo.UpdateBoard(ctx, boardID, fields); err != nil {
		return nil, err
	}
	if err := s.cache.DeleteBoardDetail(ctx, boardID); err != nil {
		// 缓存会在 TTL 后过期，board.changed 消费者也会覆盖它
		s.logger.Warn("更新后删除看板详情缓存失败", zap.String("boardID", boardID), zap.Error(err))
	}
	s.publishChanged(boardID)

	return s.loadDetail(ctx, boardID, true)
}

// buildBoardUpdates 把请求转换为列名到值的映射，只包含非 nil 字段
func buildBoardUpdates(req *dto.UpdateBoardRequest) (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = sql.NullString{String: *req.Description, Valid: true}
	}

	roleColumns := []struct {
		column string
		roles  *[]string
	}{
		{"create_role_list", req.CreateRoleList},
		{"modify_role_list", req.ModifyRoleList},
		{"read_role_list", req.ReadRoleList},
	}
	for _, rc := range roleColumns {
		if rc.roles == nil {
			continue
		}
		encoded, err := enums.EncodeNullRoleList(*rc.roles)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rc.column, err)
		}
		fields[rc.column] = encoded
	}
	return fields, nil
}

func (s *boardService) DeleteBoard(ctx context.Context, boardID string) error {
	// 归档快照要反映最新写入
	board, err := s.boardRepo.GetBoardByIDFromSource(ctx, boardID)
	if err != nil {
		return err
	}

	objectKey, err := s.archive.ArchiveBoard(ctx, board)
	if err != nil {
		s.logger.Error("归档看板失败，取消删除", zap.String("boardID", boardID), zap.Error(err))
		return err
	}

	deletedPosts, err := s.boardRepo.DeleteBoardCascade(ctx, boardID)
	if err != nil {
		return err
	}

	if err := s.cache.DeleteBoardDetail(ctx, boardID); err != nil {
		s.logger.Warn("删除看板详情缓存失败", zap.String("boardID", boardID), zap.Error(err))
	}

	s.logger.Info("看板已删除",
		zap.String("boardID", boardID),
		zap.Int64("deletedPosts", deletedPosts),
		zap.String("archiveKey", objectKey))

	if s.publisher != nil {
		go func(id string, n int64) {
			bgCtx, cancel := context.WithTimeout(context.Background(), eventTimeout)
			defer cancel()
			if err := s.publisher.SendBoardDeletedEvent(bgCtx, id, n); err != nil {
				s.logger.Error("发送看板删除事件失败", zap.String("boardID", id), zap.Error(err))
			}
		}(boardID, deletedPosts)
	}
	return nil
}

// publishChanged 异步发送 board.changed，失败只记日志
func (s *boardService) publishChanged(boardID string) {
	if s.publisher == nil {
		return
	}
	go func(id string) {
		bgCtx, cancel := context.WithTimeout(context.Background(), eventTimeout)
		defer cancel()
		if err := s.publisher.SendBoardChangedEvent(bgCtx, id); err != nil {
			s.logger.Error("发送看板变更事件失败", zap.String("boardID", id), zap.Error(err))
		}
	}(boardID)
}
