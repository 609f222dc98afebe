package handlers

import (
	"github.com/go-playground/validator/v10"

	"forumCPT/internal/config"
	"forumCPT/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	UserService     service.UserService
	PostService     service.PostService
	CommentService  service.CommentService
	ReactionService service.ReactionService
	StatsService    service.StatsService
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:     services.Auth,
		UserService:     services.User,
		PostService:     services.Post,
		CommentService:  services.Comment,
		ReactionService: services.Reaction,
		StatsService:    services.Stats,
		Cfg:             config,
		Validate:        validator.New(),
	}
}
