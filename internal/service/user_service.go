package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"forumCPT/internal/config"
	"forumCPT/internal/models"
	"forumCPT/internal/repository"
)

// Profile - профиль пользователя вместе с косметическим рангом
type Profile struct {
	User *models.User
	Rank string
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateUsername(ctx context.Context, userID, username string) (*Profile, error)
	DeleteAccount(ctx context.Context, userID, password string) error
}

type userService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{User: user, Rank: RankForPoints(user.Points)}, nil
}

func (s *userService) UpdateUsername(ctx context.Context, userID, username string) (*Profile, error) {
	err := s.userRepo.UpdateUsername(ctx, userID, username)
	if err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

// DeleteAccount удаляет аккаунт после подтверждения пароля
func (s *userService) DeleteAccount(ctx context.Context, userID, password string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return fmt.Errorf("пароль не совпадает")
	}

	return s.userRepo.DeleteUser(ctx, userID)
}
