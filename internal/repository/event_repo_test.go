package repository

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"todo_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

var eventColumns = []string{"id", "user_id", "occurred_at", "type", "message", "meta"}

func TestAppend_Success_WithDefaults(t *testing.T) {
	t.Parallel()
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertEventSQL)).
		WithArgs(sqlmock.AnyArg(), "u-1", sqlmock.AnyArg(), "TODO_CREATED", "hello", `{"a":1}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewEventSQLite(db).Append(ctx(t), models.ActivityEvent{
		UserID:      "u-1",
		Type:        "  todo_created ",
		Description: "hello",
		Metadata:    map[string]any{"a": 1},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
}

func TestAppend_DBError(t *testing.T) {
	t.Parallel()
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO activity_events").
		WillReturnError(errors.New("down"))

	err := NewEventSQLite(db).Append(ctx(t), models.ActivityEvent{UserID: "u-1", Type: "SIGN_IN", Description: "x"})
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected error, got %v", err)
	}
}

func TestNormalizeEvent(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	at := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)

	e := normalizeEvent(models.ActivityEvent{EventID: "keep", OccurredAt: at, Type: " sign_up"})
	if e.EventID != "keep" || e.Type != "SIGN_UP" {
		t.Fatalf("unexpected event: %+v", e)
	}
	if e.OccurredAt.Location() != time.UTC || !e.OccurredAt.Equal(at) {
		t.Fatalf("occurred_at not converted to UTC: %v", e.OccurredAt)
	}

	gen := normalizeEvent(models.ActivityEvent{})
	if gen.EventID == "" || gen.OccurredAt.IsZero() {
		t.Fatalf("defaults not filled: %+v", gen)
	}
}

func TestList_NoFilters_And_MetadataParsing(t *testing.T) {
	t.Parallel()
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	js, _ := json.Marshal(map[string]any{"todo_id": "t-1"})

	rows := sqlmock.NewRows(eventColumns).
		AddRow("1", "u-1", now, "TODO_CREATED", "m1", string(js)).
		AddRow("2", "u-1", now.Add(time.Hour), "TODO_DELETED", "m2", nil).
		AddRow("3", "u-1", now.Add(2*time.Hour), "TODO_UPDATED", "m3", "{broken")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, occurred_at, type, message, meta FROM activity_events WHERE user_id = ? ORDER BY occurred_at ASC`)).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := NewEventSQLite(db).List(ctx(t), "u-1", time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3, got %d", len(got))
	}
	b1, _ := json.Marshal(got[0].Metadata)
	if string(b1) != string(js) {
		t.Fatalf("metadata mismatch: %s vs %s", string(b1), string(js))
	}
	if got[1].Metadata != nil {
		t.Fatalf("expected nil meta, got %#v", got[1].Metadata)
	}
	if got[2].Metadata != "{broken" {
		t.Fatalf("malformed meta should be kept raw, got %#v", got[2].Metadata)
	}
}

func TestList_WithFilters_OrderAndArgs(t *testing.T) {
	t.Parallel()
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	from := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	query := `SELECT id, user_id, occurred_at, type, message, meta FROM activity_events WHERE user_id = ? AND occurred_at >= ? AND occurred_at <= ? AND type = ? ORDER BY occurred_at ASC`

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("u-1", from, to, "TODO_DELETED").
		WillReturnRows(sqlmock.NewRows(eventColumns).
			AddRow("2", "u-1", from, "TODO_DELETED", "b", nil).
			AddRow("3", "u-1", to, "TODO_DELETED", "c", nil))

	got, err := NewEventSQLite(db).List(ctx(t), "u-1", from, to, " todo_deleted ")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].EventID != "2" || got[1].EventID != "3" {
		t.Fatalf("unexpected results: %+v", got)
	}
}

func TestList_ScanError(t *testing.T) {
	t.Parallel()
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, user_id, occurred_at").
		WillReturnRows(sqlmock.NewRows(eventColumns).
			// occurred_at wrong type to force scan error
			AddRow("x", "u-1", 123, "SIGN_IN", "msg", nil))

	if _, err := NewEventSQLite(db).List(ctx(t), "u-1", time.Time{}, time.Time{}, ""); err == nil {
		t.Fatalf("expected scan error, got nil")
	}
}

func TestDeleteBefore(t *testing.T) {
	t.Parallel()
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(deleteEventSQL)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := NewEventSQLite(db).DeleteBefore(ctx(t), cutoff)
	if err != nil {
		t.Fatalf("DeleteBefore: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 rows, got %d", n)
	}
}
