package service

import (
	"context"
	"time"

	"todo_backend/internal/logger"
	"todo_backend/internal/models"
	"todo_backend/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, in SignUpInput) (models.User, error)
	GenerateToken(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (string, error)
	GetUser(ctx context.Context, id string) (models.User, error)
}

// Todo enforces ownership and field-presence rules on a user's todos.
type Todo interface {
	Create(ctx context.Context, userID, content string) (models.Todo, error)
	Update(ctx context.Context, userID string, in UpdateTodoInput) (models.Todo, error)
	Delete(ctx context.Context, userID, todoID string) error
	List(ctx context.Context, userID string) ([]models.Todo, error)
}

// Stats exposes read-only counters over a user's todos.
type Stats interface {
	GetStats(ctx context.Context, userID string) (models.TodoStats, error)
}

// ActivityLog exposes the per-user audit trail with filtering.
type ActivityLog interface {
	List(ctx context.Context, userID string, f LogFilter) ([]models.ActivityEvent, error)
}

// Sweeper runs the background retention loop. Stop it by cancelling ctx.
type Sweeper interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Authorization
	Todo
	Stats
	ActivityLog
	Sweeper
}

// Options carries the tunables NewService hands to the concrete services.
type Options struct {
	SigningKey        string
	TokenTTL          time.Duration
	ActivityRetention time.Duration
}

func NewService(repos *repository.Repository, opts Options, log *logger.Logger) *Service {
	rec := newActivityRecorder(repos.EventRepo, log)
	return &Service{
		Authorization: NewAuthService(repos.Auth, rec, AuthConfig{SigningKey: opts.SigningKey, TokenTTL: opts.TokenTTL}),
		Todo:          NewTodoService(repos.TodoRepo, rec),
		Stats:         NewStatsService(repos.TodoRepo),
		ActivityLog:   NewActivityLogService(repos.EventRepo),
		Sweeper:       NewSweeperService(repos.EventRepo, opts.ActivityRetention, log),
	}
}
