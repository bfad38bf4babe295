package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"todo_backend/internal/models"
	"todo_backend/internal/repository"

	"github.com/google/uuid"
)

type TodoService struct {
	todoRepo repository.TodoRepo
	activity *activityRecorder
	now      func() time.Time
}

func NewTodoService(todoRepo repository.TodoRepo, activity *activityRecorder) *TodoService {
	return &TodoService{todoRepo: todoRepo, activity: activity, now: time.Now}
}

// Create stores a new, not-done todo for userID. Content is trimmed and must be non-empty.
func (s *TodoService) Create(ctx context.Context, userID, content string) (models.Todo, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Todo{}, ErrContentRequired
	}

	now := s.now().UTC()
	t := models.Todo{
		ID:        uuid.NewString(),
		Content:   content,
		IsDone:    false,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.todoRepo.Create(ctx, t); err != nil {
		return models.Todo{}, err
	}

	s.activity.record(ctx, userID, models.ActivityTodoCreated, "Todo created", map[string]any{"todo_id": t.ID})
	return t, nil
}

// Update sets isDone (required) and optionally content on a todo the caller owns.
func (s *TodoService) Update(ctx context.Context, userID string, in UpdateTodoInput) (models.Todo, error) {
	todoID, err := requireTodoID(in.TodoID)
	if err != nil {
		return models.Todo{}, err
	}
	if in.IsDone == nil {
		return models.Todo{}, ErrIsDoneRequired
	}

	patch := repository.TodoPatch{IsDone: *in.IsDone, UpdatedAt: s.now().UTC()}
	if in.Content != nil {
		c := strings.TrimSpace(*in.Content)
		if c == "" {
			return models.Todo{}, ErrContentRequired
		}
		patch.Content = &c
	}

	t, err := s.todoRepo.Update(ctx, userID, todoID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Todo{}, ErrTodoNotFound
		}
		return models.Todo{}, err
	}

	s.activity.record(ctx, userID, models.ActivityTodoUpdated, "Todo updated", map[string]any{
		"todo_id":         t.ID,
		"is_done":         t.IsDone,
		"content_changed": patch.Content != nil,
	})
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, userID, todoID string) error {
	id, err := requireTodoID(todoID)
	if err != nil {
		return err
	}

	if err := s.todoRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTodoNotFound
		}
		return err
	}

	s.activity.record(ctx, userID, models.ActivityTodoDeleted, "Todo deleted", map[string]any{"todo_id": id})
	return nil
}

func (s *TodoService) List(ctx context.Context, userID string) ([]models.Todo, error) {
	return s.todoRepo.ListByUser(ctx, userID)
}

// requireTodoID rejects a missing id and maps a malformed one to ErrTodoNotFound,
// so callers cannot tell a bad id from someone else's todo.
func requireTodoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrTodoIDRequired
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrTodoNotFound
	}
	return id.String(), nil
}
