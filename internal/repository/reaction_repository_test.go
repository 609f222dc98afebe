package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forumCPT/internal/models"
)

func newReactionRepoMock(t *testing.T) (ReactionRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewReactionRepository(sqlxDB)

	return repo, mock, func() { db.Close() }
}

func TestReactionRepository_AddInserts(t *testing.T) {
	repo, mock, closeDB := newReactionRepoMock(t)
	defer closeDB()

	ctx := context.Background()

	t.Run("Лайк вставлен", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO post_reactions").
			WithArgs("post-1", "user-1", "like").
			WillReturnResult(sqlmock.NewResult(0, 1))

		added, err := repo.Add(ctx, models.KindPost, "post-1", "user-1", models.ReactionLike)

		assert.NoError(t, err)
		assert.True(t, added)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Конфликт по ключу - вставки нет", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO post_reactions").
			WithArgs("post-1", "user-1", "like").
			WillReturnResult(sqlmock.NewResult(0, 0))

		added, err := repo.Add(ctx, models.KindPost, "post-1", "user-1", models.ReactionLike)

		assert.NoError(t, err)
		assert.False(t, added)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Реакция на комментарий идёт в свою таблицу", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO comment_reactions").
			WithArgs("comment-1", "user-1", "dislike").
			WillReturnResult(sqlmock.NewResult(0, 1))

		added, err := repo.Add(ctx, models.KindComment, "comment-1", "user-1", models.ReactionDislike)

		assert.NoError(t, err)
		assert.True(t, added)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReactionRepository_RemoveDeletesOnlyMatchingKind(t *testing.T) {
	repo, mock, closeDB := newReactionRepoMock(t)
	defer closeDB()

	ctx := context.Background()

	t.Run("Снятие стоящего лайка", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM post_reactions").
			WithArgs("post-1", "user-1", "like").
			WillReturnResult(sqlmock.NewResult(0, 1))

		removed, err := repo.Remove(ctx, models.KindPost, "post-1", "user-1", models.ReactionLike)

		assert.NoError(t, err)
		assert.True(t, removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Реакции не было - ничего не удалено", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM post_reactions").
			WithArgs("post-1", "user-1", "dislike").
			WillReturnResult(sqlmock.NewResult(0, 0))

		removed, err := repo.Remove(ctx, models.KindPost, "post-1", "user-1", models.ReactionDislike)

		assert.NoError(t, err)
		assert.False(t, removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReactionRepository_GetSplitsByKind(t *testing.T) {
	repo, mock, closeDB := newReactionRepoMock(t)
	defer closeDB()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"user_id", "kind"}).
		AddRow("user-1", "like").
		AddRow("user-2", "dislike").
		AddRow("user-3", "like")

	mock.ExpectQuery("SELECT user_id, kind FROM post_reactions").
		WithArgs("post-1").
		WillReturnRows(rows)

	likes, dislikes, err := repo.Get(ctx, models.KindPost, "post-1")

	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"user-1", "user-3"}, likes)
	assert.ElementsMatch(t, []string{"user-2"}, dislikes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReactionRepository_UnknownEntityKind(t *testing.T) {
	repo, _, closeDB := newReactionRepoMock(t)
	defer closeDB()

	ctx := context.Background()

	_, err := repo.Add(ctx, models.EntityKind("vote"), "id", "user", models.ReactionLike)
	assert.Error(t, err)

	_, _, err = repo.Get(ctx, models.EntityKind("vote"), "id")
	assert.Error(t, err)
}
