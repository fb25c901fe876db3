package mysql

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/board_service/models/entities"
)

func TestPostRepository_CreatePost(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `tb_post`")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	post := &entities.Post{BoardID: "b1", Title: "hello", Content: "world", AuthorID: "u1"}
	require.NoError(t, repo.CreatePost(context.Background(), db, post))
	assert.NotEmpty(t, post.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CountPostsByBoardIDs(t *testing.T) {
	t.Run("single grouped query", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostRepository(db)

		// 整页只发一条 SQL，没有帖子的 b3 不在结果里
		mock.ExpectQuery(regexp.QuoteMeta("SELECT board_id, COUNT(*) AS cnt FROM `tb_post` WHERE board_id IN (?,?,?)")+".*GROUP BY").
			WithArgs("b1", "b2", "b3").
			WillReturnRows(sqlmock.NewRows([]string{"board_id", "cnt"}).
				AddRow("b1", 4).
				AddRow("b2", 1))

		counts, err := repo.CountPostsByBoardIDs(context.Background(), []string{"b1", "b2", "b3"})
		require.NoError(t, err)
		assert.Equal(t, int64(4), counts["b1"])
		assert.Equal(t, int64(1), counts["b2"])
		assert.Equal(t, int64(0), counts["b3"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty ids skip the database", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostRepository(db)

		counts, err := repo.CountPostsByBoardIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, counts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT board_id, COUNT(*) AS cnt FROM `tb_post`")).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.CountPostsByBoardIDs(context.Background(), []string{"b1"})
		assert.Error(t, err)
	})
}
