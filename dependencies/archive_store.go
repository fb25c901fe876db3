package dependencies

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/tencentyun/cos-go-sdk-v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/myErrors"
)

// ArchiveStore 在删除看板前保存一份 JSON 快照
type ArchiveStore interface {
	// ArchiveBoard 上传看板快照，返回对象键。未启用归档时返回空字符串和 nil。
	// 失败时返回的错误包裹 myErrors.ErrArchiveFailed。
	ArchiveBoard(ctx context.Context, board *entities.Board) (string, error)
}

// BoardSnapshot 归档文件内容。角色字段保留数据库中的原始编码，损坏的数据也能原样留档。
type BoardSnapshot struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	CreateRoleList *string   `json:"createRoleList"`
	ModifyRoleList *string   `json:"modifyRoleList"`
	ReadRoleList   *string   `json:"readRoleList"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	ArchivedAt     time.Time `json:"archivedAt"`
}

// NewBoardSnapshot 从实体构造快照，NULL 列对应 JSON null
func NewBoardSnapshot(board *entities.Board, archivedAt time.Time) BoardSnapshot {
	return BoardSnapshot{
		ID:             board.ID,
		Name:           board.Name,
		Description:    nullable(board.Description),
		CreateRoleList: nullable(board.CreateRoles),
		ModifyRoleList: nullable(board.ModifyRoles),
		ReadRoleList:   nullable(board.ReadRoles),
		CreatedAt:      board.CreatedAt,
		UpdatedAt:      board.UpdatedAt,
		ArchivedAt:     archivedAt,
	}
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// ArchiveObjectKey 生成 boards/archive/YYYYMMDD/{id}.json
func ArchiveObjectKey(boardID string, at time.Time) string {
	return fmt.Sprintf("%s%s/%s.json", constant.COSObjectKeyPrefixBoardArchive, at.Format("20060102"), boardID)
}

type noopArchiveStore struct{}

func (noopArchiveStore) ArchiveBoard(context.Context, *entities.Board) (string, error) {
	return "", nil
}

type cosArchiveStore struct {
	client *cos.Client
	logger *zap.Logger
	now    func() time.Time
}

// InitArchiveStore 根据配置创建归档存储。未配置 COS 凭证时返回不做任何事的实现。
func InitArchiveStore(cfg *config.COSConfig, logger *core.ZapLogger) (ArchiveStore, error) {
	if cfg == nil || !cfg.Enabled() {
		logger.Warn("COS 未配置，看板删除前不会归档快照")
		return noopArchiveStore{}, nil
	}
	if cfg.BucketName == "" || cfg.AppID == "" || cfg.Region == "" {
		logger.Error("COS 配置不完整", zap.String("bucket", cfg.BucketName), zap.String("region", cfg.Region))
		return nil, fmt.Errorf("COS 配置不完整，缺少关键字段 (BucketName, AppID, Region)")
	}

	bucketURLStr := fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", cfg.BucketName, cfg.AppID, cfg.Region)
	bucketURL, err := url.Parse(bucketURLStr)
	if err != nil {
		return nil, fmt.Errorf("解析 COS 存储桶 URL '%s' 失败: %w", bucketURLStr, err)
	}

	// 签名在内层，otelhttp 在外层记录每次上传的 span
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(&cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		}),
		Timeout: 30 * time.Second,
	}

	logger.Info("COS 归档存储初始化成功",
		zap.String("bucket", cfg.BucketName),
		zap.String("region", cfg.Region))
	return newCOSArchiveStore(bucketURL, httpClient, logger.Logger()), nil
}

func newCOSArchiveStore(bucketURL *url.URL, httpClient *http.Client, logger *zap.Logger) *cosArchiveStore {
	return &cosArchiveStore{
		client: cos.NewClient(&cos.BaseURL{BucketURL: bucketURL}, httpClient),
		logger: logger,
		now:    time.Now,
	}
}

func (s *cosArchiveStore) ArchiveBoard(ctx context.Context, board *entities.Board) (string, error) {
	if board == nil {
		return "", fmt.Errorf("%w: board 为 nil", myErrors.ErrArchiveFailed)
	}
	now := s.now()
	objectKey := ArchiveObjectKey(board.ID, now)

	payload, err := json.Marshal(NewBoardSnapshot(board, now))
	if err != nil {
		return "", fmt.Errorf("%w: 序列化快照失败: %v", myErrors.ErrArchiveFailed, err)
	}

	opts := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   "application/json",
			ContentLength: int64(len(payload)),
		},
	}
	resp, err := s.client.Object.Put(ctx, objectKey, bytes.NewReader(payload), opts)
	if err != nil {
		s.logger.Error("上传看板归档快照失败", zap.String("objectKey", objectKey), zap.Error(err))
		return "", fmt.Errorf("%w: 上传 %s: %v", myErrors.ErrArchiveFailed, objectKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		s.logger.Error("COS 返回非 200 状态码",
			zap.String("objectKey", objectKey),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", msg))
		return "", fmt.Errorf("%w: 上传 %s 状态码 %d", myErrors.ErrArchiveFailed, objectKey, resp.StatusCode)
	}

	s.logger.Info("看板归档快照已上传", zap.String("boardID", board.ID), zap.String("objectKey", objectKey))
	return objectKey, nil
}
