package service

import (
	"context"
	"fmt"

	"forumCPT/internal/models"
	"forumCPT/internal/repository"
)

// Шкала очков репутации. Снятие реакции возвращает ровно столько,
// сколько дала её установка; отрицательный итог обрезается в ноль на уровне БД.
const (
	PointsLike          = 3
	PointsDislike       = 1
	PointsPostCreate    = 3
	PointsCommentCreate = 1
)

// ReactionService - журнал реакций и репутации.
// Все четыре операции идемпотентны: повторный Like при уже стоящем лайке
// ничего не меняет, Unlike без лайка тоже. Like при стоящем дизлайке
// сначала снимает дизлайк (+1 автору), затем ставит лайк (+3).
type ReactionService interface {
	Like(ctx context.Context, entity models.EntityKind, entityID, userID string) (*models.ReactionResult, error)
	Unlike(ctx context.Context, entity models.EntityKind, entityID, userID string) (*models.ReactionResult, error)
	Dislike(ctx context.Context, entity models.EntityKind, entityID, userID string) (*models.ReactionResult, error)
	Undislike(ctx context.Context, entity models.EntityKind, entityID, userID string) (*models.ReactionResult, error)
}

type reactionService struct {
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	reactionRepo repository.ReactionRepository
}

func NewReactionService(userRepo repository.UserRepository, postRepo repository.PostRepository, commentRepo repository.CommentRepository, reactionRepo repository.ReactionRepository) ReactionService {
	return &reactionService{
		userRepo:     userRepo,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
	}
}

// resolveAuthor находит автора сущности. Сущность и автор обязаны существовать.
func (s *reactionService) resolveAuthor(ctx context.Context, entity models.EntityKind, entityID string) (string, error) {
	switch entity {
	case models.KindPost:
		post, err := s.postRepo.GetByID(ctx, entityID)
		if err != nil {
			return "", err
		}
		return post.AuthorID, nil
	case models.KindComment:
		comment, err := s.commentRepo.GetByID(ctx, entityID)
		if err != nil {
			return "", err
		}
		return comment.AuthorID, nil
	default:
		return "", fmt.Errorf("неизвестный вид сущности: %s", entity)
	}
}

// checkActor проверяет, что действующий пользователь существует
func (s *reactionService) checkActor(ctx context.Context, userID string) error {
	_, err := s.userRepo.GetUserByID(ctx, userID)
	return err
}

// result собирает текущие множества реакций и очки автора
func (s *reactionService) result(ctx context.Context, entity models.EntityKind, entityID, authorID string) (*models.ReactionResult, error) {
	likes, dislikes, err := s.reactionRepo.Get(ctx, entity, entityID)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	return &models.ReactionResult{
		Likes:        likes,
		Dislikes:     dislikes,
		AuthorPoints: author.Points,
	}, nil
}

func (s *reactionService) Like(ctx context.Context, entity models.EntityKind, entityID, userID string) (*models.ReactionResult, error) {
	authorID, err := s.resolveAuthor(ctx, entity, entityID)
	if err != nil {
		return nil, err
	}

	if err := s.checkActor(ctx, userID); err != nil {
		return nil, err
	}

	// standing dislike goes away first, its point is returned
	removed, err := s.reactionRepo.Remove(ctx, entity, entityID, userID, models.ReactionDislike)
	if err != nil {
		return nil, err
	}
	if removed {
		if _, err := s.userRepo.AddPoints(ctx, authorID, PointsDislike); err != nil {
			return nil, err
		}
	}

	added, err := s.reactionRepo.Add(ctx, entity, entityID, userID, models.ReactionLike)
	if err != nil {
		return nil, err
	}
	if added {
		if _, err := s.userRepo.AddPoints(ctx, authorID, PointsLike); err != nil {
			return nil, err
		}
	}

	return s.result(ctx, entity, entityID, authorID)
}

func (s *reactionService) Unlike(ctx context.Context, entity models.EntityKind, entityID, userID string) (*models.ReactionResult, error) {
	authorID, err := s.resolveAuthor(ctx, entity, entityID)
	if err != nil {
		return nil, err
	}

	if err := s.checkActor(ctx, userID); err != nil {
		return nil, err
	}

	removed, err := s.reactionRepo.Remove(ctx, entity, entityID, userID, models.ReactionLike)
	if err != nil {
		return nil, err
	}
	if removed {
		if _, err := s.userRepo.AddPoints(ctx, authorID, -PointsLike); err != nil {
			return nil, err
		}
	}

	return s.result(ctx, entity, entityID, authorID)
}

func (s *reactionService) Dislike(ctx context.Context, entity models.EntityKind, entityID, userID string) (*models.ReactionResult, error) {
	authorID, err := s.resolveAuthor(ctx, entity, entityID)
	if err != nil {
		return nil, err
	}

	if err := s.checkActor(ctx, userID); err != nil {
		return nil, err
	}

	// standing like goes away first, its points are taken back
	removed, err := s.reactionRepo.Remove(ctx, entity, entityID, userID, models.ReactionLike)
	if err != nil {
		return nil, err
	}
	if removed {
		if _, err := s.userRepo.AddPoints(ctx, authorID, -PointsLike); err != nil {
			return nil, err
		}
	}

	added, err := s.reactionRepo.Add(ctx, entity, entityID, userID, models.ReactionDislike)
	if err != nil {
		return nil, err
	}
	if added {
		if _, err := s.userRepo.AddPoints(ctx, authorID, -PointsDislike); err != nil {
			return nil, err
		}
	}

	return s.result(ctx, entity, entityID, authorID)
}

func (s *reactionService) Undislike(ctx context.Context, entity models.EntityKind, entityID, userID string) (*models.ReactionResult, error) {
	authorID, err := s.resolveAuthor(ctx, entity, entityID)
	if err != nil {
		return nil, err
	}

	if err := s.checkActor(ctx, userID); err != nil {
		return nil, err
	}

	removed, err := s.reactionRepo.Remove(ctx, entity, entityID, userID, models.ReactionDislike)
	if err != nil {
		return nil, err
	}
	if removed {
		if _, err := s.userRepo.AddPoints(ctx, authorID, PointsDislike); err != nil {
			return nil, err
		}
	}

	return s.result(ctx, entity, entityID, authorID)
}
