package service

import (
	"forumCPT/internal/config"
	"forumCPT/internal/repository"
	"forumCPT/internal/storage"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Post     PostService
	Comment  CommentService
	Reaction ReactionService
	Stats    StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:     NewAuthService(rep.User, cfg),
		User:     NewUserService(rep.User, cfg),
		Post:     NewPostService(rep.Post, rep.User, rep.Reaction, storage, cfg),
		Comment:  NewCommentService(rep.Comment, rep.Post, rep.User, rep.Reaction),
		Reaction: NewReactionService(rep.User, rep.Post, rep.Comment, rep.Reaction),
		Stats:    NewStatsService(rep.Stats),
	}
}
