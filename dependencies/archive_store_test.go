package dependencies

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/myErrors"
)

func newTestBoard() *entities.Board {
	b := &entities.Board{
		Name:        "公告",
		Description: sql.NullString{String: "学生会通知", Valid: true},
		CreateRoles: sql.NullString{String: "PRESIDENT,ADMIN", Valid: true},
		ModifyRoles: sql.NullString{String: "ADMIN", Valid: true},
	}
	b.ID = "b1"
	return b
}

func TestArchiveObjectKey(t *testing.T) {
	at := time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "boards/archive/20250307/b1.json", ArchiveObjectKey("b1", at))
}

func TestNewBoardSnapshot_KeepsRawEncodingAndNulls(t *testing.T) {
	snap := NewBoardSnapshot(newTestBoard(), time.Unix(0, 0))

	require.NotNil(t, snap.CreateRoleList)
	assert.Equal(t, "PRESIDENT,ADMIN", *snap.CreateRoleList)
	assert.Nil(t, snap.ReadRoleList)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"readRoleList":null`)
}

func TestCOSArchiveStore_ArchiveBoard(t *testing.T) {
	var gotPath string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	bucketURL, _ := url.Parse(server.URL)
	store := newCOSArchiveStore(bucketURL, server.Client(), zap.NewNop())
	// 假服务端不回 x-cos-hash-crc64ecma，关闭 CRC 校验
	store.client.Conf.EnableCRC = false
	store.now = func() time.Time { return time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC) }

	key, err := store.ArchiveBoard(context.Background(), newTestBoard())
	require.NoError(t, err)
	assert.Equal(t, "boards/archive/20250307/b1.json", key)
	assert.Equal(t, "/boards/archive/20250307/b1.json", gotPath)

	var snap BoardSnapshot
	require.NoError(t, json.Unmarshal(gotBody, &snap))
	assert.Equal(t, "b1", snap.ID)
	assert.Equal(t, "公告", snap.Name)
}

func TestCOSArchiveStore_UploadRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	bucketURL, _ := url.Parse(server.URL)
	store := newCOSArchiveStore(bucketURL, server.Client(), zap.NewNop())

	key, err := store.ArchiveBoard(context.Background(), newTestBoard())
	assert.ErrorIs(t, err, myErrors.ErrArchiveFailed)
	assert.Empty(t, key)
}

func TestNoopArchiveStore(t *testing.T) {
	key, err := noopArchiveStore{}.ArchiveBoard(context.Background(), newTestBoard())
	assert.NoError(t, err)
	assert.Empty(t, key)
}
