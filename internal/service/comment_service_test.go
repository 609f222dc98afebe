package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forumCPT/internal/models"
	"forumCPT/internal/repository"
)

func newCommentFixture() (*memStore, CommentService) {
	store := newMemStore()
	service := NewCommentService(
		&memCommentRepo{store: store},
		&memPostRepo{store: store},
		&memUserRepo{store: store},
		&memReactionRepo{store: store},
	)
	return store, service
}

func TestCommentService_AddCommentAwardsPoint(t *testing.T) {
	store, service := newCommentFixture()
	store.users["userB"] = &models.User{UserID: "userB", Points: 0}
	store.users["author"] = &models.User{UserID: "author", Points: 0}
	store.posts["post-1"] = &models.Post{PostID: "post-1", AuthorID: "author"}

	ctx := context.Background()

	comment, points, err := service.AddComment(ctx, "post-1", "userB", "Комментарий")
	require.NoError(t, err)

	assert.NotEmpty(t, comment.CommentID)
	assert.Equal(t, 1, points)
}

func TestCommentService_AddCommentPostMissing(t *testing.T) {
	store, service := newCommentFixture()
	store.users["userB"] = &models.User{UserID: "userB", Points: 0}

	ctx := context.Background()

	_, _, err := service.AddComment(ctx, "missing", "userB", "Комментарий")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCommentService_DeleteReversesAwardWithClamp(t *testing.T) {
	store, service := newCommentFixture()
	store.users["userB"] = &models.User{UserID: "userB", Points: 0}
	store.comments["comment-1"] = &models.Comment{CommentID: "comment-1", AuthorID: "userB"}

	ctx := context.Background()

	// очки уже потрачены, списание обрезается в ноль
	points, err := service.DeleteComment(ctx, "comment-1", "userB")
	require.NoError(t, err)
	assert.Equal(t, 0, points)
}

func TestCommentService_DeleteForeignCommentForbidden(t *testing.T) {
	store, service := newCommentFixture()
	store.users["userB"] = &models.User{UserID: "userB", Points: 5}
	store.comments["comment-1"] = &models.Comment{CommentID: "comment-1", AuthorID: "userB"}

	ctx := context.Background()

	_, err := service.DeleteComment(ctx, "comment-1", "intruder")
	assert.ErrorContains(t, err, "нет прав")
}
