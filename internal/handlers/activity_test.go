package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo_backend/internal/models"
	"todo_backend/internal/service"
)

func TestActivityHandler_ListAndValidation(t *testing.T) {
	auth := &mockAuth{parseID: "u-99"}
	now := time.Now().UTC().Truncate(time.Second)
	events := []models.ActivityEvent{
		{EventID: "e1", UserID: "u-99", OccurredAt: now, Type: models.ActivitySignIn, Description: "signed in"},
		{EventID: "e2", UserID: "u-99", OccurredAt: now.Add(1 * time.Second), Type: models.ActivityTodoCreated, Description: "created"},
	}
	logs := &mockActivityLog{resp: events}
	s := &service.Service{
		Authorization: auth,
		ActivityLog:   logs,
	}
	r := newTestRouter(s)

	// invalid 'from' → 400
	w := httptest.NewRecorder()
	r.ServeHTTP(w, withAuth(httptest.NewRequest(http.MethodGet, "/api/v1/activity/?from=notatime", nil), "valid"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid 'from', got %d", w.Code)
	}

	// valid range and type; the raw type is passed through for the service to normalize
	w = httptest.NewRecorder()
	q := "/api/v1/activity/?from=" + now.Format(time.RFC3339) + "&to=" + now.Add(2*time.Second).Format(time.RFC3339) + "&type=todo_created"
	r.ServeHTTP(w, withAuth(httptest.NewRequest(http.MethodGet, q, nil), "valid"))
	if w.Code != http.StatusOK {
		t.Fatalf("activity status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int                    `json:"count"`
		Events []models.ActivityEvent `json:"events"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Events) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if logs.lastUserID != "u-99" || logs.lastFilter.Type != "todo_created" {
		t.Fatalf("unexpected service call: user=%q filter=%+v", logs.lastUserID, logs.lastFilter)
	}
	if !logs.lastFilter.From.Equal(now) {
		t.Fatalf("from not parsed: %v", logs.lastFilter.From)
	}
}

func TestActivityHandler_DateOnlyToIsEndOfDay(t *testing.T) {
	logs := &mockActivityLog{}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: "u"}, ActivityLog: logs})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withAuth(httptest.NewRequest(http.MethodGet, "/api/v1/activity/?to=2025-08-31", nil), "valid"))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	want := time.Date(2025, 8, 31, 23, 59, 59, 999999999, time.UTC)
	if !logs.lastFilter.To.Equal(want) {
		t.Fatalf("to: got %v, want %v", logs.lastFilter.To, want)
	}
}

func TestActivityHandler_ServiceErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid range", service.ErrInvalidTimeRange, http.StatusBadRequest},
		{"store failure", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: "u"}, ActivityLog: &mockActivityLog{err: tc.err}})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, withAuth(httptest.NewRequest(http.MethodGet, "/api/v1/activity/", nil), "valid"))
			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d", w.Code, tc.wantCode)
			}
		})
	}
}

func TestParseQueryTime(t *testing.T) {
	for _, s := range []string{"2025-08-27T15:04:05Z", "2025-08-27 15:04:05", "2025-08-27"} {
		if _, err := parseQueryTime(s); err != nil {
			t.Fatalf("parseQueryTime(%q): %v", s, err)
		}
	}
	if _, err := parseQueryTime("27/08/2025"); err == nil {
		t.Fatalf("expected error for unsupported layout")
	}
}
