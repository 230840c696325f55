package mysql

import (
	"context"
	"testing"
	"time"

	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"github.com/stretchr/testify/assert"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
)

func TestPostGetByID_Found(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostDBRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `post`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "user_id", "likes", "updated_at", "created_at"}).
			AddRow(7, "hello", "world", 1, 3, now, now))

	p, err := repo.GetByID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "hello", p.Title)
	assert.Equal(t, int64(1), p.User.ID)
	assert.Equal(t, int64(3), p.Likes)
}

func TestPostGetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostDBRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `post`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "user_id", "likes", "updated_at", "created_at"}))

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostDelete_CascadesToCommentsAndLikes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostDBRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `post`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `comment`").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `user_likes`").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 7)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostDelete_Missing_RollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostDBRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `post`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostAddLikes_Missing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostDBRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `post` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.AddLikes(context.Background(), 404, 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostFetch_BadCursor(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := NewPostDBRepository(db)

	_, err := repo.Fetch(context.Background(), domain.PostQuery{Cursor: "garbage!!", Num: 10})

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestPostFetchByAuthors_EmptyAuthors(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := NewPostDBRepository(db)

	posts, err := repo.FetchByAuthors(context.Background(), nil, "", 10)

	assert.NoError(t, err)
	assert.Empty(t, posts)
}
