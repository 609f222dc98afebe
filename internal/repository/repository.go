package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"forumCPT/internal/models"
)

// ErrNotFound возвращается, когда запрошенная запись отсутствует в БД
var ErrNotFound = errors.New("запись не найдена")

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	UpdateUsername(ctx context.Context, userID, username string) error
	DeleteUser(ctx context.Context, userID string) error
	VerifyPassword(ctx context.Context, login, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
	AddPoints(ctx context.Context, userID string, delta int) (int, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetPage(ctx context.Context, limit, offset int) ([]models.Post, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
	UpdateImageURL(ctx context.Context, postID string, imageURL *string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID string, limit, offset int) ([]models.Comment, error)
	CountByPostID(ctx context.Context, postID string) (int, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID string) error
}

// ReactionRepository - атомарные операции над множествами лайков/дизлайков.
// Add и Remove выполняются одним SQL-запросом и сообщают, изменилась ли строка,
// чтобы сервис мог начислить очки ровно один раз.
type ReactionRepository interface {
	Add(ctx context.Context, entity models.EntityKind, entityID, userID string, kind models.ReactionKind) (bool, error)
	Remove(ctx context.Context, entity models.EntityKind, entityID, userID string, kind models.ReactionKind) (bool, error)
	Get(ctx context.Context, entity models.EntityKind, entityID string) (likes []string, dislikes []string, err error)
}

type StatsRepository interface {
	CountRows(ctx context.Context) (map[string]int, error)
}

type Repository struct {
	User     UserRepository
	Post     PostRepository
	Comment  CommentRepository
	Reaction ReactionRepository
	Stats    StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Post:     NewPostRepository(db),
		Comment:  NewCommentRepository(db),
		Reaction: NewReactionRepository(db),
		Stats:    NewStatsRepository(db),
	}
}
