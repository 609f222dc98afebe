package service

import (
	"context"

	"forumCPT/internal/repository"
)

type StatsService interface {
	GetCounts(ctx context.Context) (map[string]int, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetCounts(ctx context.Context) (map[string]int, error) {
	return s.statsRepo.CountRows(ctx)
}
