package service

import (
	"context"
	"strings"
	"time"

	"todo_backend/internal/logger"
	"todo_backend/internal/models"
	"todo_backend/internal/repository"
)

type ActivityLogService struct {
	eventRepo repository.EventRepo
}

func NewActivityLogService(eventRepo repository.EventRepo) *ActivityLogService {
	return &ActivityLogService{eventRepo: eventRepo}
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

func normalizeAndValidateFilter(f LogFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", ErrInvalidTimeRange
	}

	return from, to, normalizeEventType(f.Type), nil
}

func (s *ActivityLogService) List(ctx context.Context, userID string, f LogFilter) ([]models.ActivityEvent, error) {
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, userID, from, to, typ)
}

// activityRecorder appends audit events on behalf of other services.
// Failures are logged and swallowed: the user action already succeeded.
type activityRecorder struct {
	repo repository.EventRepo
	log  *logger.Logger
}

func newActivityRecorder(repo repository.EventRepo, log *logger.Logger) *activityRecorder {
	return &activityRecorder{repo: repo, log: log}
}

func (r *activityRecorder) record(ctx context.Context, userID, typ, description string, meta map[string]any) {
	if r == nil || r.repo == nil {
		return
	}
	ev := models.ActivityEvent{
		UserID:      userID,
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: description,
	}
	if meta != nil {
		ev.Metadata = meta
	}
	if err := r.repo.Append(ctx, ev); err != nil && r.log != nil {
		r.log.Warnw("activity_append_failed", "err", err, "user_id", userID, "type", typ)
	}
}
