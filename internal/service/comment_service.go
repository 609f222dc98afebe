package service

import (
	"context"
	"fmt"

	"forumCPT/internal/models"
	"forumCPT/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, postID, authorID, content string) (*models.Comment, int, error)
	GetComments(ctx context.Context, postID string, page, limit int) ([]models.Comment, int, error)
	UpdateComment(ctx context.Context, commentID, authorID, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID, authorID string) (int, error)
}

type commentService struct {
	commentRepo  repository.CommentRepository
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	reactionRepo repository.ReactionRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository, reactionRepo repository.ReactionRepository) CommentService {
	return &commentService{
		commentRepo:  commentRepo,
		postRepo:     postRepo,
		userRepo:     userRepo,
		reactionRepo: reactionRepo,
	}
}

func (s *commentService) AddComment(ctx context.Context, postID, authorID, content string) (*models.Comment, int, error) {
	// the post has to exist
	_, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, 0, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}

	err = s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, 0, err
	}

	points, err := s.userRepo.AddPoints(ctx, authorID, PointsCommentCreate)
	if err != nil {
		return nil, 0, err
	}

	comment.Likes = []string{}
	comment.Dislikes = []string{}

	return comment, points, nil
}

func (s *commentService) GetComments(ctx context.Context, postID string, page, limit int) ([]models.Comment, int, error) {
	offset := (page - 1) * limit

	comments, err := s.commentRepo.GetByPostID(ctx, postID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.commentRepo.CountByPostID(ctx, postID)
	if err != nil {
		return nil, 0, err
	}

	for i := range comments {
		likes, dislikes, err := s.reactionRepo.Get(ctx, models.KindComment, comments[i].CommentID)
		if err != nil {
			return nil, 0, err
		}
		comments[i].Likes = likes
		comments[i].Dislikes = dislikes
	}

	return comments, total, nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, authorID, content string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != authorID {
		return nil, fmt.Errorf("нет прав на изменение комментария")
	}

	comment.Content = content

	err = s.commentRepo.Update(ctx, comment)
	if err != nil {
		return nil, err
	}

	likes, dislikes, err := s.reactionRepo.Get(ctx, models.KindComment, commentID)
	if err != nil {
		return nil, err
	}

	comment.Likes = likes
	comment.Dislikes = dislikes

	return comment, nil
}

// DeleteComment удаляет комментарий автора и возвращает очко за создание.
// Очки от чужих реакций на комментарий не пересчитываются - как в исходной системе.
func (s *commentService) DeleteComment(ctx context.Context, commentID, authorID string) (int, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return 0, err
	}

	if comment.AuthorID != authorID {
		return 0, fmt.Errorf("нет прав на удаление комментария")
	}

	err = s.commentRepo.Delete(ctx, commentID)
	if err != nil {
		return 0, err
	}

	points, err := s.userRepo.AddPoints(ctx, authorID, -PointsCommentCreate)
	if err != nil {
		return 0, err
	}

	return points, nil
}
