package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
	"github.com/scholarfind/scholarship-api/internal/core/ports"
)

type StatsService struct {
	repo ports.StatsRepository
	log  zerolog.Logger
}

func NewStatsService(repo ports.StatsRepository, log zerolog.Logger) *StatsService {
	return &StatsService{repo: repo, log: log}
}

func (s *StatsService) Collect(ctx context.Context) (*domain.AdminStats, error) {
	stats, err := s.repo.Collect(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to collect admin stats")
		return nil, err
	}
	return stats, nil
}
