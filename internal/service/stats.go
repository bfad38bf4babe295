package service

import (
	"context"

	"todo_backend/internal/models"
	"todo_backend/internal/repository"
)

type StatsService struct {
	todoRepo repository.TodoRepo
}

func NewStatsService(todoRepo repository.TodoRepo) *StatsService {
	return &StatsService{todoRepo: todoRepo}
}

// GetStats returns total/done/pending counts for the user's todos.
func (s *StatsService) GetStats(ctx context.Context, userID string) (models.TodoStats, error) {
	st, err := s.todoRepo.Stats(ctx, userID)
	if err != nil {
		return models.TodoStats{}, err
	}
	return st, nil
}
